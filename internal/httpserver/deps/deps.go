package deps

import (
	"context"
	"time"

	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/pagecache"
	"github.com/zeframlou/bunni-docs/internal/site"
)

// Pinger reports whether the shared cache backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	AllowedHosts  []string           // Host headers allowed on admin routes
	AllowedCIDRS  []string           // IPs allowed on health and admin routes
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateBurst     int                // per-IP burst on the landing page
	RatePerMin    int                // per-IP refill on the landing page
	Site          *site.Holder       // current site configuration
	Pages         *pagecache.Service // rendered landing page cache
	Redis         Pinger             // nil when the page cache is in-memory
	ReloadTrigger chan struct{}      // manual site reload
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/pagecache"
)

type componentStatus struct {
	OK         bool             `json:"ok"`
	Mode       string           `json:"mode,omitempty"`
	Source     string           `json:"source,omitempty"`
	Title      string           `json:"title,omitempty"`
	LastReload string           `json:"last_reload,omitempty"`
	Cached     *int             `json:"cached,omitempty"`
	Stats      *pagecache.Stats `json:"stats,omitempty"`
	Impact     string           `json:"impact,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the site configuration, the page cache and
// the optional Redis backend.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"site":       siteStatus(d),
			"page_cache": pageCacheStatus(r.Context(), d),
			"redis":      checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func siteStatus(d deps.Deps) componentStatus {
	lastReload := "never"
	if t := d.Site.LastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}
	return componentStatus{
		OK:         true,
		Source:     d.Site.Source(),
		Title:      d.Site.Get().Title,
		LastReload: lastReload,
	}
}

func pageCacheStatus(ctx context.Context, d deps.Deps) componentStatus {
	stats := d.Pages.Stats()
	status := componentStatus{OK: true, Mode: stats.Backend, Stats: &stats}

	cached, err := d.Pages.Cached(ctx)
	if err != nil {
		status.OK = false
		status.Impact = "direct-rendering"
		status.Error = err.Error()
		return status
	}
	status.Cached = &cached
	return status
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Redis == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Redis.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "direct-rendering",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true, Mode: "optimal"}
}

// overallStatus is "degraded" when any component is down. The page itself
// is always served, so there is no critical state.
func overallStatus(components map[string]componentStatus) string {
	for _, c := range components {
		if !c.OK {
			return "degraded"
		}
	}
	return "ok"
}

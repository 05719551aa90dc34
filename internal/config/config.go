package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SiteFile       string        // optional site.yaml (title, tagline, description); empty = built-in defaults
	ReloadInterval time.Duration // interval to reload the site file (default: 1h)
	PageCacheTTL   time.Duration // lifetime of a rendered page in the cache (default: 10m)

	// Redis (optional, empty addr = in-memory page cache)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisPasswordReq    bool          // true => BUNNI_REDIS_PASSWORD must be set when Redis is enabled
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict admin routes to specific Host headers
	AllowedCIDRS []string // optional, restrict health/admin routes to specific IPs (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateBurst  int // per-IP burst on the landing page
	RatePerMin int // per-IP refill rate on the landing page
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BUNNI_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BUNNI_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BUNNI_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BUNNI_PRETTY_LOG", true),

		// Site
		SiteFile:       getenv("BUNNI_SITE_FILE", ""),
		ReloadInterval: mustDuration("BUNNI_RELOAD_INTERVAL", time.Hour),
		PageCacheTTL:   mustDuration("BUNNI_PAGE_CACHE_TTL", 10*time.Minute),

		// Redis settings
		RedisAddr:           getenv("BUNNI_REDIS_ADDR", ""),
		RedisUser:           getenv("BUNNI_REDIS_USERNAME", ""),
		RedisPassword:       getenv("BUNNI_REDIS_PASSWORD", ""),
		RedisPasswordReq:    mustBool("BUNNI_REDIS_PASSWORD_REQUIRED", false),
		RedisDB:             getenvInt("BUNNI_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("BUNNI_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("BUNNI_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("BUNNI_TRUST_PROXY", false),

		RateBurst:  getenvInt("BUNNI_RATE_BURST", 60),
		RatePerMin: getenvInt("BUNNI_RATE_PER_MIN", 120),
	}

	if cfg.RedisEnabled() && cfg.RedisPasswordReq {
		cfg.RedisPassword = requireEnv("BUNNI_REDIS_PASSWORD")
	}

	if cfg.ReloadInterval <= 0 {
		panic(fmt.Sprintf("❌ FATAL: BUNNI_RELOAD_INTERVAL must be > 0, got %v", cfg.ReloadInterval))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// RedisEnabled reports whether a shared Redis page cache was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/zeframlou/bunni-docs/internal/config"
	"github.com/zeframlou/bunni-docs/internal/domain"
	"github.com/zeframlou/bunni-docs/internal/httpserver"
	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/pagecache"
	"github.com/zeframlou/bunni-docs/internal/redis"
	"github.com/zeframlou/bunni-docs/internal/scheduler"
	"github.com/zeframlou/bunni-docs/internal/site"
	"github.com/zeframlou/bunni-docs/internal/store/memory"
	redisstore "github.com/zeframlou/bunni-docs/internal/store/redis"
	"github.com/zeframlou/bunni-docs/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.SiteReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	checkTables(loggerClient)

	// Page cache: Redis when configured and reachable, memory otherwise.
	var (
		store       pagecache.Store = memory.NewStore()
		backend                     = "memory"
		redisClient *goredis.Client
		pinger      deps.Pinger
	)
	if cfg.RedisEnabled() {
		client, err := redis.Connect(context.Background(), redis.OptionsFromConfig(cfg), loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, falling back to in-memory page cache",
				logger.Error(err))
		} else {
			rs := redisstore.NewStore(client)
			store, backend, redisClient, pinger = rs, "redis", client, rs
		}
	}
	pages := pagecache.NewService(store, backend, cfg.PageCacheTTL, loggerClient)
	loggerClient.Info("page cache initialized",
		logger.String("backend", backend),
		logger.Duration("ttl", cfg.PageCacheTTL))

	holder := site.NewHolder(domain.DefaultSiteConfig())

	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewSiteReloader(
		cfg.SiteFile,
		holder,
		pages,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		RateBurst:     cfg.RateBurst,
		RatePerMin:    cfg.RatePerMin,
		Site:          holder,
		Pages:         pages,
		Redis:         pinger,
		ReloadTrigger: reloadTrigger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		reloader:    reloader,
	}
}

// checkTables logs authoring defects in the compiled-in link tables.
// They never stop the service; the page renders whatever the tables hold.
func checkTables(log logger.Logger) {
	if err := domain.ValidateGuides(domain.Guides()); err != nil {
		log.Warn("guide table has authoring defects", logger.Error(err))
	}
	if err := domain.ValidateExternalLinks(domain.ExternalLinks()); err != nil {
		log.Warn("external link table has authoring defects", logger.Error(err))
	}
	log.Debug("link tables loaded",
		logger.Int("guides", len(domain.Guides())),
		logger.Int("external_links", len(domain.ExternalLinks())))
}

func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting bunni-docs %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("bunni-docs %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Loads the site file (if any) and starts periodic refresh
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start site reloader: %w", err)
	}
	a.logger.Info("site reloader started",
		logger.String("file", a.cfg.SiteFile),
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.reloader.Stop()
		return err
	}

	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ bunni-docs stopped cleanly")
	return nil
}

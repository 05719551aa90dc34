package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zeframlou/bunni-docs/internal/domain"
	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/site"
	"github.com/zeframlou/bunni-docs/internal/sources/siteconfig"
)

// PageInvalidator drops rendered pages that may be stale.
type PageInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SiteReloader handles periodic reloading of the site file
type SiteReloader struct {
	loader        *siteconfig.Loader // nil when no site file is configured
	mapper        *siteconfig.Mapper
	holder        *site.Holder
	pages         PageInvalidator
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger chan struct{}
}

// NewSiteReloader creates a new site reloader. An empty siteFile keeps
// the built-in defaults; manual triggers then only invalidate the page cache.
func NewSiteReloader(
	siteFile string,
	holder *site.Holder,
	pages PageInvalidator,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SiteReloader {
	var loader *siteconfig.Loader
	if siteFile != "" {
		loader = siteconfig.NewLoader(siteFile)
	}
	return &SiteReloader{
		loader:        loader,
		mapper:        siteconfig.NewMapper(domain.DefaultSiteConfig()),
		holder:        holder,
		pages:         pages,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the site file once, then reloads it periodically and on demand
func (sr *SiteReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial site reload failed: %w", err)
	}

	// Without a site file only manual triggers matter; a nil tick never fires.
	var ticker *time.Ticker
	var tick <-chan time.Time
	if sr.loader != nil {
		ticker = time.NewTicker(sr.interval)
		tick = ticker.C
	}
	go sr.loop(ctx, ticker, tick)

	return nil
}

func (sr *SiteReloader) loop(ctx context.Context, ticker *time.Ticker, tick <-chan time.Time) {
	if ticker != nil {
		defer ticker.Stop()
	}
	for {
		select {
		case <-tick:
			if err := sr.Reload(ctx); err != nil {
				sr.logger.Error("failed to reload site file",
					logger.Error(err))
			}
		case <-sr.manualTrigger:
			sr.logger.Info("manual site reload triggered")
			if err := sr.Reload(ctx); err != nil {
				sr.logger.Error("failed to reload site file",
					logger.Error(err))
			}
		case <-sr.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop stops the reloader
func (sr *SiteReloader) Stop() {
	sr.stopOnce.Do(func() { close(sr.stopCh) })
}

// Reload reads the site file, swaps the configuration and invalidates the
// page cache when something changed. Without a site file it only invalidates.
func (sr *SiteReloader) Reload(ctx context.Context) error {
	if sr.loader == nil {
		sr.logger.Debug("no site file configured, keeping defaults")
		return sr.invalidate(ctx)
	}

	sr.logger.Info("reloading site file",
		logger.String("file", sr.loader.Path()))

	file, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load site file: %w", err)
	}

	cfg := sr.mapper.Map(file)
	changed := sr.holder.Set(cfg, sr.loader.Path())

	sr.logger.Info("site configuration loaded",
		logger.String("title", cfg.Title),
		logger.Bool("changed", changed))

	if !changed {
		return nil
	}
	return sr.invalidate(ctx)
}

func (sr *SiteReloader) invalidate(ctx context.Context) error {
	if sr.pages == nil {
		return nil
	}
	// Best effort: stale pages expire on their own.
	if err := sr.pages.Invalidate(ctx); err != nil {
		sr.logger.Warn("failed to invalidate page cache",
			logger.Error(err))
	}
	return nil
}

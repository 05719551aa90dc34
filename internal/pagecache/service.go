package pagecache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"

	"github.com/zeframlou/bunni-docs/internal/domain"
	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/render"
	"github.com/zeframlou/bunni-docs/internal/version"
)

// Store persists rendered pages by fingerprint.
// GetPage returns (nil, nil) on a miss.
type Store interface {
	GetPage(ctx context.Context, fingerprint string) (*domain.RenderedPage, error)
	SavePage(ctx context.Context, fingerprint string, page *domain.RenderedPage, ttl time.Duration) error
	FlushPages(ctx context.Context) error
	Fingerprints(ctx context.Context) ([]string, error)
}

// RenderFunc writes the landing page for a site configuration.
type RenderFunc func(w io.Writer, site domain.SiteConfig) error

// Stats is a snapshot of cache activity.
type Stats struct {
	Backend string `json:"backend"`
	Hits    int64  `json:"hits"`
	Renders int64  `json:"renders"`
	Errors  int64  `json:"errors"`
}

// Service serves landing page renders, reusing cached output when the
// inputs have not changed. Renders are pure, so a cached page is
// byte-identical to a fresh one.
type Service struct {
	store   Store
	backend string
	ttl     time.Duration
	logger  logger.Logger
	render  RenderFunc
	now     func() time.Time
	group   singleflight.Group

	hits    atomic.Int64
	renders atomic.Int64
	errors  atomic.Int64
}

// NewService creates a page cache on top of store. backend names the
// store in logs and stats ("memory", "redis").
func NewService(store Store, backend string, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		store:   store,
		backend: backend,
		ttl:     ttl,
		logger:  log,
		render:  render.RenderHome,
		now:     time.Now,
	}
}

// Fingerprint identifies every input of a render. Static tables are
// compiled in, so the build version stands in for them.
func Fingerprint(site domain.SiteConfig) string {
	d := xxhash.New()
	for _, part := range []string{version.Version, version.Commit, site.Title, site.Tagline, site.Description} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// ETag returns a quoted strong validator for body.
func ETag(body []byte) string {
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
}

// Page returns the landing page for site, rendering it on a miss.
// Store failures are logged and never fail the request.
func (s *Service) Page(ctx context.Context, site domain.SiteConfig) (*domain.RenderedPage, error) {
	fp := Fingerprint(site)

	if page := s.lookup(ctx, fp); page != nil {
		s.hits.Add(1)
		return page, nil
	}

	v, err, shared := s.group.Do(fp, func() (interface{}, error) {
		var buf bytes.Buffer
		if err := s.render(&buf, site); err != nil {
			return nil, fmt.Errorf("failed to render page: %w", err)
		}
		s.renders.Add(1)

		page := &domain.RenderedPage{
			Body:        buf.Bytes(),
			ETag:        ETag(buf.Bytes()),
			Fingerprint: fp,
			RenderedAt:  s.now(),
		}

		if s.store != nil {
			// Detached from the caller so a cancelled request still fills the cache.
			saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if err := s.store.SavePage(saveCtx, fp, page, s.ttl); err != nil {
				s.errors.Add(1)
				s.logger.Warn("failed to save page to cache",
					logger.String("backend", s.backend),
					logger.String("fingerprint", fp),
					logger.Error(err))
			}
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.Debug("page render shared between concurrent requests",
			logger.String("fingerprint", fp))
	}
	return v.(*domain.RenderedPage), nil
}

func (s *Service) lookup(ctx context.Context, fp string) *domain.RenderedPage {
	if s.store == nil {
		return nil
	}
	page, err := s.store.GetPage(ctx, fp)
	if err != nil {
		s.errors.Add(1)
		s.logger.Warn("page cache lookup failed, rendering directly",
			logger.String("backend", s.backend),
			logger.Error(err))
		return nil
	}
	return page
}

// Invalidate drops every cached page.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.FlushPages(ctx); err != nil {
		return fmt.Errorf("failed to invalidate %s page cache: %w", s.backend, err)
	}
	s.logger.Info("page cache invalidated", logger.String("backend", s.backend))
	return nil
}

// Cached returns how many pages the store currently holds.
func (s *Service) Cached(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	fps, err := s.store.Fingerprints(ctx)
	if err != nil {
		return 0, err
	}
	return len(fps), nil
}

// Stats returns a snapshot of cache counters.
func (s *Service) Stats() Stats {
	return Stats{
		Backend: s.backend,
		Hits:    s.hits.Load(),
		Renders: s.renders.Load(),
		Errors:  s.errors.Load(),
	}
}

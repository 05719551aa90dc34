package pagecache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zeframlou/bunni-docs/internal/domain"
	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/store/memory"
)

type failingStore struct{}

func (failingStore) GetPage(context.Context, string) (*domain.RenderedPage, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) SavePage(context.Context, string, *domain.RenderedPage, time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) FlushPages(context.Context) error { return errors.New("connection refused") }

func (failingStore) Fingerprints(context.Context) ([]string, error) {
	return nil, errors.New("connection refused")
}

func TestPageCachesRender(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())
	site := domain.DefaultSiteConfig()

	first, err := svc.Page(ctx, site)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	second, err := svc.Page(ctx, site)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}

	if !bytes.Equal(first.Body, second.Body) {
		t.Error("cached page differs from first render")
	}
	if first.ETag != ETag(first.Body) {
		t.Errorf("ETag = %s, want %s", first.ETag, ETag(first.Body))
	}

	stats := svc.Stats()
	if stats.Renders != 1 || stats.Hits != 1 {
		t.Errorf("Stats() = %+v, want 1 render and 1 hit", stats)
	}
	if n, _ := svc.Cached(ctx); n != 1 {
		t.Errorf("Cached() = %d, want 1", n)
	}
}

func TestPageDiffersPerSite(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())

	a, _ := svc.Page(ctx, domain.SiteConfig{Title: "Bunni", Tagline: "docs"})
	b, _ := svc.Page(ctx, domain.SiteConfig{Title: "Bunni", Tagline: "other"})

	if a.Fingerprint == b.Fingerprint {
		t.Error("different sites share a fingerprint")
	}
	if a.ETag == b.ETag {
		t.Error("different pages share an ETag")
	}
	if !strings.Contains(string(b.Body), "other") {
		t.Error("second page does not reflect its tagline")
	}
}

func TestPageMatchesDirectRender(t *testing.T) {
	site := domain.SiteConfig{Title: "Bunni", Tagline: "docs", Description: "d"}
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())

	page, err := svc.Page(context.Background(), site)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}

	var direct bytes.Buffer
	if err := svc.render(&direct, site); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !bytes.Equal(page.Body, direct.Bytes()) {
		t.Error("cached page is not byte-identical to a direct render")
	}
}

func TestPageSurvivesStoreFailure(t *testing.T) {
	svc := NewService(failingStore{}, "redis", time.Minute, logger.Nop())

	page, err := svc.Page(context.Background(), domain.DefaultSiteConfig())
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if len(page.Body) == 0 {
		t.Error("Page() returned empty body")
	}
	if svc.Stats().Errors != 2 {
		t.Errorf("Errors = %d, want 2 (lookup + save)", svc.Stats().Errors)
	}
	if err := svc.Invalidate(context.Background()); err == nil {
		t.Error("Invalidate() should surface store errors")
	}
}

func TestPageWithoutStore(t *testing.T) {
	svc := NewService(nil, "none", 0, logger.Nop())

	for i := 0; i < 2; i++ {
		if _, err := svc.Page(context.Background(), domain.DefaultSiteConfig()); err != nil {
			t.Fatalf("Page() error = %v", err)
		}
	}
	if svc.Stats().Renders != 2 {
		t.Errorf("Renders = %d, want 2 without a store", svc.Stats().Renders)
	}
	if err := svc.Invalidate(context.Background()); err != nil {
		t.Errorf("Invalidate() error = %v", err)
	}
}

func TestPageRenderError(t *testing.T) {
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())
	svc.render = func(io.Writer, domain.SiteConfig) error { return errors.New("boom") }

	if _, err := svc.Page(context.Background(), domain.DefaultSiteConfig()); err == nil {
		t.Error("Page() should return render errors")
	}
}

func TestInvalidateForcesRerender(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())
	site := domain.DefaultSiteConfig()

	_, _ = svc.Page(ctx, site)
	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	_, _ = svc.Page(ctx, site)

	if svc.Stats().Renders != 2 {
		t.Errorf("Renders = %d, want 2 after invalidation", svc.Stats().Renders)
	}
}

func TestConcurrentPagesAreIdentical(t *testing.T) {
	svc := NewService(memory.NewStore(), "memory", time.Minute, logger.Nop())
	site := domain.DefaultSiteConfig()

	const n = 32
	bodies := make([][]byte, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := svc.Page(context.Background(), site)
			if err != nil {
				t.Errorf("Page() error = %v", err)
				return
			}
			bodies[i] = page.Body
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if !bytes.Equal(bodies[0], bodies[i]) {
			t.Fatalf("page %d differs from page 0", i)
		}
	}
	if r := svc.Stats().Renders; r < 1 || r > n {
		t.Errorf("Renders = %d, want between 1 and %d", r, n)
	}
}

func TestFingerprintStable(t *testing.T) {
	site := domain.DefaultSiteConfig()
	if Fingerprint(site) != Fingerprint(site) {
		t.Error("Fingerprint() is not deterministic")
	}
	// Field boundaries must matter.
	a := Fingerprint(domain.SiteConfig{Title: "ab", Tagline: "c"})
	b := Fingerprint(domain.SiteConfig{Title: "a", Tagline: "bc"})
	if a == b {
		t.Error("Fingerprint() ignores field boundaries")
	}
}

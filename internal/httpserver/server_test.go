package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zeframlou/bunni-docs/internal/domain"
	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/logger"
	"github.com/zeframlou/bunni-docs/internal/pagecache"
	"github.com/zeframlou/bunni-docs/internal/site"
	"github.com/zeframlou/bunni-docs/internal/store/memory"
)

func testDeps() deps.Deps {
	log := logger.Nop()
	return deps.Deps{
		Logger:        log,
		StartTime:     time.Now(),
		Version:       "test",
		RateBurst:     100,
		RatePerMin:    100,
		Site:          site.NewHolder(domain.DefaultSiteConfig()),
		Pages:         pagecache.NewService(memory.NewStore(), "memory", time.Minute, log),
		ReloadTrigger: make(chan struct{}, 1),
	}
}

func serve(h http.Handler, method, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, nil)
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHomeServesLandingPage(t *testing.T) {
	h := NewRouter(logger.Nop(), testDeps())

	w := serve(h, "GET", "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"Bunni", "Getting Started", "Developer Links", "./docs/intro", "https://github.com/zeframlou/bunni"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("ETag header missing")
	}

	w = serve(h, "GET", "/", func(r *http.Request) { r.Header.Set("If-None-Match", etag) })
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("304 response must not carry a body")
	}

	w = serve(h, "GET", "/", func(r *http.Request) { r.Header.Set("If-None-Match", `"stale"`) })
	if w.Code != http.StatusOK {
		t.Errorf("stale ETag status = %d, want 200", w.Code)
	}
	if w.Body.String() != body {
		t.Error("second render differs from the first")
	}
}

func TestHomeHead(t *testing.T) {
	h := NewRouter(logger.Nop(), testDeps())
	w := serve(h, "HEAD", "/", nil)
	if w.Code != http.StatusOK {
		t.Errorf("HEAD status = %d, want 200", w.Code)
	}
}

func TestHomeRateLimited(t *testing.T) {
	d := testDeps()
	d.RateBurst = 1
	d.RatePerMin = 1
	h := NewRouter(logger.Nop(), d)

	if w := serve(h, "GET", "/", nil); w.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", w.Code)
	}
	w := serve(h, "GET", "/", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
}

func TestHomeFollowsSiteConfig(t *testing.T) {
	d := testDeps()
	h := NewRouter(logger.Nop(), d)

	first := serve(h, "GET", "/", nil)
	d.Site.Set(domain.SiteConfig{Title: "Bunni", Tagline: "docs", Description: "d"}, "test")
	second := serve(h, "GET", "/", nil)

	if first.Header().Get("ETag") == second.Header().Get("ETag") {
		t.Error("ETag should change with the site configuration")
	}
	if !strings.Contains(second.Body.String(), `<p class="hero__subtitle">docs</p>`) {
		t.Error("new tagline not rendered")
	}
}

func TestStaticStylesheet(t *testing.T) {
	h := NewRouter(logger.Nop(), testDeps())

	w := serve(h, "GET", "/static/styles.css", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}

	if w := serve(h, "GET", "/static/missing.css", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	h := NewRouter(logger.Nop(), testDeps())

	w := serve(h, "GET", "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("response = %+v", resp)
	}
}

func TestReadyz(t *testing.T) {
	h := NewRouter(logger.Nop(), testDeps())

	w := serve(h, "GET", "/readyz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ready":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestInfra(t *testing.T) {
	d := testDeps()
	h := NewRouter(logger.Nop(), d)

	serve(h, "GET", "/", nil)
	w := serve(h, "GET", "/infra", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Status     string `json:"status"`
		Components map[string]struct {
			OK     bool   `json:"ok"`
			Mode   string `json:"mode"`
			Source string `json:"source"`
			Cached *int   `json:"cached"`
		} `json:"components"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if c := resp.Components["redis"]; !c.OK || c.Mode != "disabled" {
		t.Errorf("redis = %+v, want disabled", c)
	}
	if c := resp.Components["page_cache"]; c.Mode != "memory" || c.Cached == nil || *c.Cached != 1 {
		t.Errorf("page_cache = %+v, want memory with 1 cached page", c)
	}
	if c := resp.Components["site"]; c.Source != "defaults" {
		t.Errorf("site source = %q, want defaults", c.Source)
	}
}

func TestReload(t *testing.T) {
	d := testDeps()
	h := NewRouter(logger.Nop(), d)

	if w := serve(h, "POST", "/reload", nil); w.Code != http.StatusAccepted {
		t.Fatalf("first status = %d, want 202", w.Code)
	}
	// Trigger buffer is full until the reloader drains it.
	if w := serve(h, "POST", "/reload", nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429", w.Code)
	}

	<-d.ReloadTrigger
	if w := serve(h, "POST", "/reload", nil); w.Code != http.StatusAccepted {
		t.Errorf("after drain status = %d, want 202", w.Code)
	}

	if w := serve(h, "GET", "/reload", nil); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", w.Code)
	}
}

func TestAdminRoutesRestricted(t *testing.T) {
	d := testDeps()
	d.AllowedCIDRS = []string{"10.0.0.0/8"}
	d.AllowedHosts = []string{"admin.bunni.internal"}
	h := NewRouter(logger.Nop(), d)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{"GET", "/readyz"},
		{"GET", "/infra"},
		{"POST", "/reload"},
	} {
		if w := serve(h, tt.method, tt.path, nil); w.Code != http.StatusForbidden {
			t.Errorf("%s %s status = %d, want 403", tt.method, tt.path, w.Code)
		}
	}

	allowed := func(r *http.Request) {
		r.RemoteAddr = "10.1.2.3:4567"
		r.Host = "admin.bunni.internal"
	}
	if w := serve(h, "POST", "/reload", allowed); w.Code != http.StatusAccepted {
		t.Errorf("allowed reload status = %d, want 202", w.Code)
	}

	wrongHost := func(r *http.Request) {
		r.RemoteAddr = "10.1.2.3:4567"
		r.Host = "example.com"
	}
	if w := serve(h, "POST", "/reload", wrongHost); w.Code != http.StatusForbidden {
		t.Errorf("wrong host reload status = %d, want 403", w.Code)
	}

	// Public routes ignore the admin restrictions.
	if w := serve(h, "GET", "/", nil); w.Code != http.StatusOK {
		t.Errorf("landing page status = %d, want 200", w.Code)
	}
	if w := serve(h, "GET", "/healthz", nil); w.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", w.Code)
	}
}

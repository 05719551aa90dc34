package handlers

import (
	"net/http"
	"strings"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/logger"
)

// Home serves the landing page. Clients holding the current ETag get 304.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := d.Pages.Page(r.Context(), d.Site.Get())
		if err != nil {
			d.Logger.Error("failed to produce landing page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h := w.Header()
		h.Set("ETag", page.ETag)
		h.Set("Cache-Control", "public, max-age=0, must-revalidate")
		h.Set("Last-Modified", page.RenderedAt.UTC().Format(http.TimeFormat))

		if etagMatches(r.Header.Get("If-None-Match"), page.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		h.Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(page.Body); err != nil {
			d.Logger.Debug("failed to write landing page", logger.Error(err))
		}
	}
}

// etagMatches implements the weak comparison used by If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

package handlers

import (
	"net/http"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/logger"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz is ready once the landing page can be produced. A cache outage
// does not count: the page is then rendered directly.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := d.Pages.Page(r.Context(), d.Site.Get()); err != nil {
			d.Logger.Warn("readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}

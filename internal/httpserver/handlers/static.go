package handlers

import (
	"net/http"

	"github.com/zeframlou/bunni-docs/internal/render"
)

// Static serves the embedded stylesheet and other assets under prefix.
func Static(prefix string) http.Handler {
	fileServer := http.StripPrefix(prefix, http.FileServerFS(render.Static()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}

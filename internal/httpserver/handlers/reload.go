package handlers

import (
	"net/http"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/logger"
)

// Reload triggers a manual reload of the site file and page cache.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, msg := http.StatusAccepted, "✅ Reload triggered successfully\n"

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual site reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
		default:
			d.Logger.Warn("site reload already pending",
				logger.String("remote_ip", r.RemoteAddr))
			status, msg = http.StatusTooManyRequests, "⏳ Reload already in progress, please wait\n"
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(msg)); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

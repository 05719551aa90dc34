package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/httpserver/handlers"
	"github.com/zeframlou/bunni-docs/internal/httpserver/mw"
)

func init() { Register(registerHome) }

func registerHome(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RatePerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	})).Get("/", handlers.Home(d))
}

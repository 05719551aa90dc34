package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/zeframlou/bunni-docs/internal/httpserver/deps"
	"github.com/zeframlou/bunni-docs/internal/httpserver/handlers"
)

func init() { Register(registerStatic) }

func registerStatic(r chi.Router, _ deps.Deps) {
	r.Handle("/static/*", handlers.Static("/static/"))
}

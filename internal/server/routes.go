package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("CodeQuizzer Auth API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, store))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/register", handleRegister(store))
		r.Post("/login", handleLogin(store))
	})
}

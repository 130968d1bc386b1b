// Package http wires the endpoint handlers and middleware into a router.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/auth"
	"cricket-scoring-service/internal/http/handlers"
	"cricket-scoring-service/internal/http/middleware"
	"cricket-scoring-service/internal/metrics"
)

// NewRouter registers the API routes. Everything under /api requires a
// bearer token; /health and /ready are public.
func NewRouter(h *handlers.Handler, verifier *auth.Verifier, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(verifier, logger))

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.ListMatches)
			r.Post("/", h.CreateMatch)
			r.Get("/done", h.ListDoneMatches)
			r.Get("/tags", h.MatchTags)
			r.Get("/{id}", h.GetMatch)
			r.Put("/{id}", h.EditMatch)
			r.Delete("/{id}", h.DeleteMatch)

			r.Put("/{id}/begin", h.BeginMatch)
			r.Put("/{id}/toss", h.TossMatch)
			r.Post("/{id}/over", h.AddOver)
			r.Post("/{id}/bowl", h.AddDelivery)
			r.Put("/{id}/bowl", h.EditDelivery)
			r.Put("/{id}/by", h.AddByRun)
			r.Put("/{id}/uncertain-out", h.AddUncertainOut)
			r.Put("/{id}/declare", h.DeclareInnings)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{id}", h.PlayerStats)
			r.Put("/{id}", h.EditPlayer)
			r.Delete("/{id}", h.DeletePlayer)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Put("/{id}", h.EditTeam)
			r.Delete("/{id}", h.DeleteTeam)
		})

		r.Route("/umpires", func(r chi.Router) {
			r.Get("/", h.ListUmpires)
			r.Post("/", h.CreateUmpire)
			r.Put("/{id}", h.EditUmpire)
			r.Delete("/{id}", h.DeleteUmpire)
		})
	})

	return r
}

// Package handlers contains the HTTP endpoint implementations. Handlers
// decode and authenticate, delegate to the app services, and render the
// success/error envelopes; all scoring and validation logic lives below.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"cricket-scoring-service/internal/app/matches"
	"cricket-scoring-service/internal/app/rosters"
	"cricket-scoring-service/internal/app/scoring"
	"cricket-scoring-service/internal/app/stats"
)

// Handler bundles the app services the endpoints dispatch to.
type Handler struct {
	matches *matches.Service
	scoring *scoring.Service
	stats   *stats.Service
	rosters *rosters.Service
	// ready probes the storage backend; nil means always ready.
	ready  func(context.Context) error
	logger *slog.Logger
}

// New constructs a Handler.
func New(m *matches.Service, sc *scoring.Service, st *stats.Service, ro *rosters.Service, ready func(context.Context) error, logger *slog.Logger) *Handler {
	return &Handler{matches: m, scoring: sc, stats: st, rosters: ro, ready: ready, logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r))
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"}, logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, logger)
}

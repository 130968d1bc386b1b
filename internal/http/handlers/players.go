package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/app/rosters"
	"cricket-scoring-service/internal/auth"
)

// ListPlayers returns the caller's active players, optionally filtered
// by ?search=.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	list, err := h.rosters.ListPlayers(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, "Error while retrieving player list", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// PlayerStats returns a player's career summary over the caller's
// completed matches.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	summary, err := h.stats.PlayerStats(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while generating stat", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully generated stat for player %s", summary.Player.Name),
		"stat":    summary,
	}, logger)
}

// CreatePlayer creates a player.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in rosters.PlayerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while creating player", logger)
		return
	}
	p, err := h.rosters.CreatePlayer(r.Context(), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while creating player", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully created player %s", p.Name),
		"player":  p,
	}, logger)
}

// EditPlayer rewrites a player's fields.
func (h *Handler) EditPlayer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in rosters.PlayerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while editing player", logger)
		return
	}
	p, err := h.rosters.EditPlayer(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while editing player", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully edited player %s", p.Name),
		"player":  p,
	}, logger)
}

// DeletePlayer soft-deletes a player.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	p, err := h.rosters.DeletePlayer(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while deleting player", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully deleted player %s", p.Name),
	}, logger)
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/app/rosters"
	"cricket-scoring-service/internal/auth"
)

// ListTeams returns the caller's teams, optionally filtered by ?search=.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	list, err := h.rosters.ListTeams(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, "Error while retrieving team list", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// CreateTeam creates a team.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in rosters.TeamInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while creating team", logger)
		return
	}
	t, err := h.rosters.CreateTeam(r.Context(), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while creating team", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully created team %s", t.Name),
		"team":    t,
	}, logger)
}

// EditTeam rewrites a team's fields.
func (h *Handler) EditTeam(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in rosters.TeamInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while editing team", logger)
		return
	}
	t, err := h.rosters.EditTeam(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while editing team", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully edited team %s", t.Name),
		"team":    t,
	}, logger)
}

// DeleteTeam removes a team.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	t, err := h.rosters.DeleteTeam(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while deleting team", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully deleted team %s", t.Name),
	}, logger)
}

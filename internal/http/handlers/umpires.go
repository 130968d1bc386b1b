package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/auth"
)

type umpireInput struct {
	Name string `json:"name"`
}

// ListUmpires returns the caller's umpires.
func (h *Handler) ListUmpires(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	list, err := h.rosters.ListUmpires(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while retrieving umpire list", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// CreateUmpire creates an umpire.
func (h *Handler) CreateUmpire(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in umpireInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while creating umpire", logger)
		return
	}
	u, err := h.rosters.CreateUmpire(r.Context(), auth.UserID(r.Context()), in.Name)
	if err != nil {
		writeError(w, r, err, "Error while creating umpire", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully created umpire %s", u.Name),
		"umpire":  u,
	}, logger)
}

// EditUmpire renames an umpire.
func (h *Handler) EditUmpire(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in umpireInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while editing umpire", logger)
		return
	}
	u, err := h.rosters.EditUmpire(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in.Name)
	if err != nil {
		writeError(w, r, err, "Error while editing umpire", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully edited umpire %s", u.Name),
		"umpire":  u,
	}, logger)
}

// DeleteUmpire removes an umpire.
func (h *Handler) DeleteUmpire(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	u, err := h.rosters.DeleteUmpire(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while deleting umpire", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully deleted umpire %s", u.Name),
	}, logger)
}

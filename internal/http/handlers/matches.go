package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/app/matches"
	"cricket-scoring-service/internal/auth"
)

// ListMatches returns the caller's active matches. Supports ?search= over
// name and tags, and ?compact=true to drop innings payloads.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	q := r.URL.Query()
	list, err := h.matches.List(r.Context(), auth.UserID(r.Context()), q.Get("search"), q.Get("compact") != "")
	if err != nil {
		writeError(w, r, err, "Error while retrieving match list", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// ListDoneMatches returns the caller's completed matches.
func (h *Handler) ListDoneMatches(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	list, err := h.matches.ListDone(r.Context(), auth.UserID(r.Context()), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, err, "Error while retrieving match list", logger)
		return
	}
	writeJSON(w, http.StatusOK, list, logger)
}

// MatchTags returns the distinct tags across the caller's matches.
func (h *Handler) MatchTags(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	tags, err := h.matches.Tags(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while retrieving tags", logger)
		return
	}
	writeJSON(w, http.StatusOK, tags, logger)
}

// GetMatch returns a single match document.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	m, err := h.matches.Get(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while retrieving match", logger)
		return
	}
	writeJSON(w, http.StatusOK, m, logger)
}

// CreateMatch creates a match in the unstarted state.
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in matches.Input
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while creating match", logger)
		return
	}
	m, err := h.matches.Create(r.Context(), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while creating match", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully created match %s", m.Name),
		"match":   m,
	}, logger)
}

// EditMatch rewrites a match's static fields.
func (h *Handler) EditMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in matches.Input
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while editing match", logger)
		return
	}
	m, err := h.matches.Edit(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while editing match", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully edited match %s", m.Name),
		"match":   m,
	}, logger)
}

// DeleteMatch removes a match.
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	name, err := h.matches.Delete(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err, "Error while deleting match", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Successfully deleted match %s", name),
	}, logger)
}

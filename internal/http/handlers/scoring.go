package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cricket-scoring-service/internal/app/scoring"
	"cricket-scoring-service/internal/auth"
	"cricket-scoring-service/internal/domain/match"
)

// BeginMatch freezes the rosters and moves the match to the toss state.
func (h *Handler) BeginMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in scoring.BeginInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while starting match", logger)
		return
	}
	res, err := h.scoring.Begin(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while starting match", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Successfully started match",
		"match":   res,
	}, logger)
}

// TossMatch records the toss outcome and opens the first innings.
func (h *Handler) TossMatch(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in scoring.TossInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while tossing match", logger)
		return
	}
	res, err := h.scoring.Toss(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while tossing match", logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Successfully tossed match",
		"match":   res,
	}, logger)
}

// AddOver appends a fresh over to the current innings.
func (h *Handler) AddOver(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in struct {
		BowledBy *match.RosterIndex `json:"bowledBy"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while saving over", logger)
		return
	}
	var bowledBy match.RosterIndex = -1
	if in.BowledBy != nil {
		bowledBy = *in.BowledBy
	}
	if err := h.scoring.AddOver(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), bowledBy); err != nil {
		writeError(w, r, err, "Error while saving over", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true}, logger)
}

// AddDelivery appends a delivery to the last over of the current innings.
func (h *Handler) AddDelivery(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var p match.DeliveryPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err, "Error while saving bowl", logger)
		return
	}
	id, err := h.scoring.AddDelivery(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), p)
	if err != nil {
		writeError(w, r, err, "Error while saving bowl", logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "_id": id}, logger)
}

// EditDelivery replaces the addressed delivery, carrying forward only its
// identity and batter.
func (h *Handler) EditDelivery(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var p match.DeliveryPayload
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	res, err := h.scoring.UpdateDelivery(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), p, scoring.ModeReplace)
	if err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	writeUpdateResult(w, res, logger)
}

// AddByRun merges a by run onto the addressed delivery.
func (h *Handler) AddByRun(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in scoring.ByRunInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	res, err := h.scoring.AddByRun(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	writeUpdateResult(w, res, logger)
}

// AddUncertainOut merges a run out or obstruction dismissal onto the
// addressed delivery.
func (h *Handler) AddUncertainOut(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in scoring.UncertainOutInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	res, err := h.scoring.AddUncertainOut(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err, "Error while updating bowl", logger)
		return
	}
	writeUpdateResult(w, res, logger)
}

// DeclareInnings moves the match out of the current innings.
func (h *Handler) DeclareInnings(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r)
	var in struct {
		State match.State `json:"state"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err, "Error while declaring innings", logger)
		return
	}
	res, err := h.scoring.Declare(r.Context(), chi.URLParam(r, "id"), auth.UserID(r.Context()), in.State)
	if err != nil {
		writeError(w, r, err, "Error while declaring innings", logger)
		return
	}
	writeJSON(w, http.StatusOK, res, logger)
}

func writeUpdateResult(w http.ResponseWriter, res scoring.UpdateResult, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"innings":   res.Innings,
		"overIndex": res.OverIndex,
		"bowlIndex": res.BowlIndex,
		"bowl":      res.Bowl,
	}, logger)
}

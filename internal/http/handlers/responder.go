package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"cricket-scoring-service/internal/httperr"
	"cricket-scoring-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeError maps a service error onto the wire: 400s carry the full
// issue list so a client can highlight offending fields, 404s a bare
// message, anything else a generic message with the detail kept in logs.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger *slog.Logger) {
	status := httperr.StatusOf(err)
	body := map[string]any{
		"success": false,
		"message": fallback,
	}

	switch status {
	case http.StatusBadRequest:
		if msg := err.Error(); msg != "" {
			body["message"] = msg
		}
		body["err"] = httperr.IssuesOf(err)
		logging.Warn(logger, "validation error", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	case http.StatusNotFound:
		body["message"] = err.Error()
		body["err"] = []string{err.Error()}
		logging.Warn(logger, "not found", slog.String("path", r.URL.Path))
	default:
		logging.Error(logger, "request failed", err, slog.String("path", r.URL.Path))
	}

	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request) *slog.Logger {
	if r == nil {
		return slog.Default()
	}
	return logging.FromContext(r.Context())
}

// decodeJSON parses a request body, reporting a malformed body as a
// single-issue validation error. An empty body decodes to the zero
// value: endpoints with all-optional fields accept a bodyless request.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return httperr.NewValidationMsg("Invalid request body")
	}
	return nil
}

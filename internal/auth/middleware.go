package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"cricket-scoring-service/internal/logging"
)

// Middleware enforces bearer token auth and injects claims into the
// request context. Unauthenticated requests get a 401 with a JSON body.
func Middleware(verifier *Verifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				respondUnauthorized(w, "auth verifier not configured")
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				logging.Warn(logger, "auth failure: missing authorization header", slog.String("path", r.URL.Path))
				respondUnauthorized(w, "missing authorization header")
				return
			}

			token, ok := extractBearerToken(header)
			if !ok {
				logging.Warn(logger, "auth failure: malformed authorization header", slog.String("path", r.URL.Path))
				respondUnauthorized(w, "invalid authorization header")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logging.Warn(logger, "auth failure: token invalid", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
				respondUnauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func extractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

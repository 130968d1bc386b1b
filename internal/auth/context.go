// Package auth verifies HMAC-signed bearer tokens and carries the
// authenticated user through the request context. Every domain entity
// is scoped to the user ID taken from the token subject.
package auth

import "context"

type ctxKey int

const claimsKey ctxKey = iota

// Claims holds the verified token details the service cares about.
type Claims struct {
	// UserID is the token subject; it becomes the creator/owner scope
	// on every store operation.
	UserID   string
	Username string
	Raw      map[string]any
}

// WithClaims stores claims in a context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns claims from a context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// UserID returns the authenticated user's ID, or "" when the request
// was not authenticated.
func UserID(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.UserID
	}
	return ""
}

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultLeeway = 30 * time.Second

// Verifier validates HS256-signed access tokens against a shared secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier builds a verifier for the given signing secret.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("signing secret must be set")
	}
	parser := jwt.NewParser(
		jwt.WithLeeway(defaultLeeway),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	return &Verifier{secret: []byte(secret), parser: parser}, nil
}

// Verify parses and validates a token, returning extracted claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := v.parser.Parse(tokenString, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	claims := &Claims{
		UserID:   readString(mapClaims, "sub"),
		Username: readString(mapClaims, "username"),
		Raw:      mapClaims,
	}
	if claims.UserID == "" {
		// Some issuers put the user ID under a custom claim instead.
		claims.UserID = readString(mapClaims, "_id")
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing subject")
	}
	return claims, nil
}

// Sign mints a token for the given user. Used by tests and local
// tooling; the production issuer lives elsewhere.
func (v *Verifier) Sign(userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	})
	return token.SignedString(v.secret)
}

func readString(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}

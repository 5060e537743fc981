package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure kinds. These exist so callers can log what went
// wrong; the HTTP boundary collapses all of them into a single 401 response
// and must never echo the distinction to the client.
var (
	ErrTokenMalformed    = errors.New("token is malformed")
	ErrTokenBadSignature = errors.New("token signature is invalid")
	ErrTokenExpired      = errors.New("token is expired")
)

// Claims is the fixed claim set carried by a session token.
// It is a closed struct rather than an open map so that future fields go
// through an explicit schema change instead of silently altering trust
// semantics.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-bounded session tokens. Tokens are stateless: validity is entirely
// determined by signature and expiry at verification time.
type TokenService interface {
	// Issue creates a signed token asserting the given user as subject,
	// expiring after the configured TTL.
	Issue(userID uuid.UUID) (string, error)

	// Validate parses and verifies a token string. The signature is checked
	// before any claim is trusted. On failure the returned error wraps one of
	// the ErrToken* sentinels above.
	Validate(tokenString string) (*Claims, error)
}

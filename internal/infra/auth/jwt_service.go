// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"webmark/config"
	"webmark/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a configuration error: returning it here makes
// fx abort startup instead of running without token verification.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token with the user ID as subject and the
// configured TTL as expiry.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string. The signature is verified
// before any claim is inspected; only then is expiry checked. The returned
// error wraps one of the service.ErrToken* sentinels so callers can log the
// failure kind without exposing it to the client.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrTokenBadSignature)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject is not a valid user id")
	}
	claims.UserID = userID

	return claims, nil
}

// classifyTokenError maps jwt/v5 parse errors onto the domain's token error
// kinds. The distinction only ever reaches logs.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Wrap(service.ErrTokenBadSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}

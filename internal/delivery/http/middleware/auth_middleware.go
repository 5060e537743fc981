package middleware

import (
	"log/slog"

	deliverycontext "webmark/internal/delivery/context"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where Authenticate stores the caller's user ID on
// echo.Context for downstream handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware guards routes that require an authenticated caller.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the session token carried in the Authorization
// header. The header value is the raw token, no "Bearer" prefix. Every
// failure mode (missing header, malformed token, bad signature, expired)
// collapses into the same 401 so callers learn nothing about which check
// tripped; the distinction is kept in the logs only.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(echo.HeaderAuthorization)
		if tokenString == "" {
			m.log(c).Debug("Request rejected: missing Authorization header")

			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			m.log(c).Warn("Request rejected: token validation failed", slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "webmark/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/website", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "unauthorized",
			err:      domainerrors.ErrUnauthorized,
			wantCode: http.StatusUnauthorized,
			wantBody: "UNAUTHORIZED",
		},
		{
			name:     "website not found",
			err:      domainerrors.ErrWebsiteNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "WEBSITE_NOT_FOUND",
		},
		{
			name:     "duplicate username",
			err:      domainerrors.ErrUserAlreadyExists,
			wantCode: http.StatusConflict,
			wantBody: "USER_ALREADY_EXISTS",
		},
		{
			name:     "wrapped app error keeps its status",
			err:      errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed"),
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorTestContext()

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_GenericError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Raw infrastructure detail must never reach the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

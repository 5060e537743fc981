package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webmark/internal/delivery/http/validator"
	domainerrors "webmark/internal/domain/errors"
	mockUC "webmark/internal/mocks/usecase"
	"webmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_SignUp_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Username: "alice", Password: "Password123!"}).
		Return(&usecase.SignUpOutput{UserID: userID}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/user/signup", `{"username":"alice","password":"Password123!"}`)

	err := h.SignUp(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestUserHandler_SignUp_MissingFields(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/user/signup", `{"username":"","password":""}`)

	err := h.SignUp(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserHandler_SignUp_DuplicateUsername(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Username: "alice", Password: "Password123!"}).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "sign-up failed"))

	c, _ := newJSONContext(t, http.MethodPost, "/user/signup", `{"username":"alice","password":"Password123!"}`)

	err := h.SignUp(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserHandler_SignIn_Success(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Username: "alice", Password: "Password123!"}).
		Return(&usecase.SignInOutput{Token: "signed.jwt.token"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/user/signin", `{"username":"alice","password":"Password123!"}`)

	err := h.SignIn(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestUserHandler_SignIn_InvalidCredentials(t *testing.T) {
	uc := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	uc.EXPECT().
		SignIn(mock.Anything, &usecase.SignInInput{Username: "alice", Password: "wrong"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed"))

	c, _ := newJSONContext(t, http.MethodPost, "/user/signin", `{"username":"alice","password":"wrong"}`)

	err := h.SignIn(c)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newJSONContext(t, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

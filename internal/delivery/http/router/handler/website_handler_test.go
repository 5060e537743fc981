package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"webmark/internal/delivery/http/middleware"
	"webmark/internal/domain/entity"
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

func newAuthenticatedContext(t *testing.T, ownerID uuid.UUID, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := newJSONContext(t, method, target, body)
	c.Set(middleware.ContextKeyUserID, ownerID)

	return c, rec
}

func TestWebsiteHandler_CreateWebsite_Success(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	ownerID := uuid.New()
	websiteID := uuid.New()

	uc.EXPECT().
		CreateWebsite(mock.Anything, ownerID, &usecase.CreateWebsiteInput{URL: "https://example.com"}).
		Return(&usecase.CreateWebsiteOutput{Website: &entity.Website{
			ID:     websiteID,
			UserID: ownerID,
			URL:    "https://example.com",
		}}, nil)

	c, rec := newAuthenticatedContext(t, ownerID, http.MethodPost, "/website", `{"url":"https://example.com"}`)

	err := h.CreateWebsite(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), websiteID.String())
}

func TestWebsiteHandler_CreateWebsite_MissingURL(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	c, _ := newAuthenticatedContext(t, uuid.New(), http.MethodPost, "/website", `{}`)

	err := h.CreateWebsite(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestWebsiteHandler_CreateWebsite_NoAuthenticatedUser(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/website", `{"url":"https://example.com"}`)

	err := h.CreateWebsite(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestWebsiteHandler_GetWebsite_Success(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	ownerID := uuid.New()
	website := &entity.Website{
		ID:     uuid.New(),
		UserID: ownerID,
		URL:    "https://example.com",
	}

	uc.EXPECT().
		GetWebsite(mock.Anything, website.ID, ownerID).
		Return(&usecase.GetWebsiteOutput{Website: website}, nil)

	c, rec := newAuthenticatedContext(t, ownerID, http.MethodGet, "/website/"+website.ID.String(), "")
	c.SetParamNames("website_id")
	c.SetParamValues(website.ID.String())

	err := h.GetWebsite(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), website.ID.String())
	assert.Contains(t, rec.Body.String(), "https://example.com")
	assert.Contains(t, rec.Body.String(), ownerID.String())
}

func TestWebsiteHandler_GetWebsite_NotFound(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	ownerID := uuid.New()
	websiteID := uuid.New()

	uc.EXPECT().
		GetWebsite(mock.Anything, websiteID, ownerID).
		Return(nil, domainerrors.ErrWebsiteNotFound.WrapMessage("website not found"))

	c, _ := newAuthenticatedContext(t, ownerID, http.MethodGet, "/website/"+websiteID.String(), "")
	c.SetParamNames("website_id")
	c.SetParamValues(websiteID.String())

	err := h.GetWebsite(c)

	assert.True(t, errors.Is(err, domainerrors.ErrWebsiteNotFound))
}

func TestWebsiteHandler_GetWebsite_InvalidID(t *testing.T) {
	uc := mockUC.NewMockWebsiteUsecase(t)
	h := NewWebsiteHandler(uc, newDiscardLogger())

	c, rec := newAuthenticatedContext(t, uuid.New(), http.MethodGet, "/website/not-a-uuid", "")
	c.SetParamNames("website_id")
	c.SetParamValues("not-a-uuid")

	err := h.GetWebsite(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

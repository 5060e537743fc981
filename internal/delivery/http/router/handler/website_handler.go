package handler

import (
	"log/slog"
	"net/http"

	"webmark/internal/delivery/http/middleware"
	"webmark/internal/delivery/http/response"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WebsiteHandler holds dependencies for website-related handlers.
type WebsiteHandler struct {
	uc     usecase.WebsiteUsecase
	logger *slog.Logger
}

// NewWebsiteHandler is the constructor for WebsiteHandler, injected by Fx.
func NewWebsiteHandler(uc usecase.WebsiteUsecase, logger *slog.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		uc:     uc,
		logger: logger,
	}
}

type createWebsiteRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

type createWebsiteResponse struct {
	ID uuid.UUID `json:"id"`
}

type websiteResponse struct {
	ID     uuid.UUID `json:"id"`
	URL    string    `json:"url"`
	UserID uuid.UUID `json:"user_id"`
}

// CreateWebsite registers a website owned by the authenticated caller.
func (h *WebsiteHandler) CreateWebsite(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid website input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateWebsite(c.Request().Context(), ownerID, &usecase.CreateWebsiteInput{
		URL: req.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createWebsiteResponse{ID: output.Website.ID}, "Website created successfully")
}

// GetWebsite returns one of the caller's websites by ID.
func (h *WebsiteHandler) GetWebsite(c echo.Context) error {
	ownerID, err := ownerIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	websiteID, err := uuid.Parse(c.Param("website_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid website ID")
	}

	output, err := h.uc.GetWebsite(c.Request().Context(), websiteID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, websiteResponse{
		ID:     output.Website.ID,
		URL:    output.Website.URL,
		UserID: output.Website.UserID,
	}, "Website retrieved successfully")
}

// ownerIDFromContext reads the authenticated user ID placed on the context
// by the auth middleware. Its absence means the route was wired without
// authentication, which is a server fault, but it still answers 401 rather
// than trusting the request.
func ownerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return ownerID, nil
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "webmark/internal/delivery/context"
	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	"webmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// websiteService implements the WebsiteUsecase interface.
type websiteService struct {
	websiteRepo repository.WebsiteRepository
	logger      *slog.Logger
}

// WebsiteServiceParams holds dependencies for websiteService, injected by Fx.
type WebsiteServiceParams struct {
	fx.In

	WebsiteRepo repository.WebsiteRepository
	Logger      *slog.Logger
}

// NewWebsiteService is the constructor for websiteService.
func NewWebsiteService(params WebsiteServiceParams) usecase.WebsiteUsecase {
	return &websiteService{
		websiteRepo: params.WebsiteRepo,
		logger:      params.Logger,
	}
}

func (srv *websiteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWebsite registers a website owned by the authenticated user.
func (srv *websiteService) CreateWebsite(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWebsiteInput) (*usecase.CreateWebsiteOutput, error) {
	srv.log(ctx).Debug("Creating website", slog.Any("ownerID", ownerID))

	website := &entity.Website{
		UserID: ownerID,
		URL:    input.URL,
	}

	if err := srv.websiteRepo.Create(ctx, website); err != nil {
		srv.log(ctx).Error("Failed to create website", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create website")
	}

	srv.log(ctx).Debug("Website created", slog.Any("websiteID", website.ID), slog.Any("ownerID", ownerID))

	return &usecase.CreateWebsiteOutput{Website: website}, nil
}

// GetWebsite fetches a website scoped to its owner. A record that exists but
// belongs to another user is reported exactly like a missing one.
func (srv *websiteService) GetWebsite(ctx context.Context, websiteID, ownerID uuid.UUID) (*usecase.GetWebsiteOutput, error) {
	website, err := srv.websiteRepo.FindByIDAndOwner(ctx, websiteID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrWebsiteNotFound) {
			srv.log(ctx).Debug("Website not found for owner", slog.Any("websiteID", websiteID), slog.Any("ownerID", ownerID))

			return nil, domainerrors.ErrWebsiteNotFound.WrapMessage("website not found")
		}

		srv.log(ctx).Error("Failed to load website", slog.Any("websiteID", websiteID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load website")
	}

	return &usecase.GetWebsiteOutput{Website: website}, nil
}

package usecase

import (
	"context"

	"webmark/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWebsiteInput defines the data required to register a website.
// The owner is never part of the input: it comes from the verified token
// identity passed separately by the delivery layer.
type CreateWebsiteInput struct {
	URL string
}

// CreateWebsiteOutput returns the stored website record.
type CreateWebsiteOutput struct {
	Website *entity.Website
}

// GetWebsiteOutput returns the requested website record.
type GetWebsiteOutput struct {
	Website *entity.Website
}

// WebsiteUsecase defines the interface for owner-scoped website operations.
// Every operation takes the requesting owner's ID as established by the
// authentication middleware for this request.
type WebsiteUsecase interface {
	CreateWebsite(ctx context.Context, ownerID uuid.UUID, input *CreateWebsiteInput) (*CreateWebsiteOutput, error)
	GetWebsite(ctx context.Context, websiteID, ownerID uuid.UUID) (*GetWebsiteOutput, error)
}

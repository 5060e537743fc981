package repository

import (
	"context"
	"errors"

	"webmark/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWebsiteNotFound is returned when a website does not exist for the
// requesting owner. A record owned by someone else surfaces as this same
// error — never as a distinct "forbidden".
var ErrWebsiteNotFound = errors.New("website not found")

// WebsiteRepository defines operations for owner-scoped website records.
type WebsiteRepository interface {
	// Create persists a new website record for its owner.
	Create(ctx context.Context, website *entity.Website) error

	// FindByIDAndOwner retrieves a website by ID, filtered to the given owner
	// in the same query.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Website, error)
}

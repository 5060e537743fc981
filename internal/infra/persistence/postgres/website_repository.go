package postgres

import (
	"context"

	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	"webmark/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// websiteRepository implements the repository.WebsiteRepository interface.
type websiteRepository struct {
	db *gorm.DB
}

// NewWebsiteRepository is the constructor for websiteRepository.
func NewWebsiteRepository(db *gorm.DB) repository.WebsiteRepository {
	return &websiteRepository{db: db}
}

// Create persists a new website record for its owner.
func (repo *websiteRepository) Create(ctx context.Context, website *entity.Website) error {
	websiteM := fromWebsiteDomain(website)

	if err := repo.db.WithContext(ctx).Create(websiteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWebsiteCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrWebsiteCreationFailed.WrapMessage("missing required website information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create website")
	}

	website.ID = websiteM.ID
	website.CreatedAt = websiteM.CreatedAt

	return nil
}

// FindByIDAndOwner retrieves a website by ID, scoped to its owner in the same
// query. A record owned by someone else and a record that does not exist are
// the same ErrWebsiteNotFound.
func (repo *websiteRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Website, error) {
	var websiteM model.WebsiteModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&websiteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWebsiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find website by id and owner")
	}

	return toWebsiteDomain(&websiteM), nil
}

func toWebsiteDomain(data *model.WebsiteModel) *entity.Website {
	if data == nil {
		return nil
	}

	return &entity.Website{
		ID:        data.ID,
		UserID:    data.UserID,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
	}
}

func fromWebsiteDomain(data *entity.Website) *model.WebsiteModel {
	if data == nil {
		return nil
	}

	return &model.WebsiteModel{
		ID:     data.ID,
		UserID: data.UserID,
		URL:    data.URL,
	}
}

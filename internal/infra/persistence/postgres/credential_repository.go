package postgres

import (
	"context"

	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	"webmark/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists the credential record for a user.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.CreatedAt = credM.CreatedAt

	return nil
}

// FindByUsername resolves a username to its credential through a join on the
// users table, so the caller never sees whether the username or the password
// was the missing piece.
func (repo *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var credM model.CredentialModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = credentials.user_id").
		Where("users.username = ?", username).
		First(&credM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialDomain(&credM), nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		UserID:       data.UserID,
		PasswordHash: data.PasswordHash,
	}
}

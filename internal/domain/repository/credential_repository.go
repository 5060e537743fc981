package repository

import (
	"context"
	"errors"

	"webmark/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for a username.
// The service layer merges it with a wrong password into one unauthorized
// outcome to avoid username enumeration.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines operations for the hashed-password records
// backing user logins.
type CredentialRepository interface {
	// Create persists the credential for a newly registered user.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUsername resolves a username to its credential, joining through
	// the users table.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}

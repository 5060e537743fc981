package postgres

import (
	"context"
	"testing"
	"time"

	"webmark/internal/domain/entity"
	"webmark/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectExec(`INSERT INTO "credentials"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cred := &entity.Credential{
		UserID:       uuid.New(),
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
	}
	err := repo.Create(context.Background(), cred)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_FindByUsername_JoinsUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "credentials" JOIN users ON users\.id = credentials\.user_id WHERE users\.username = .*`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash", "created_at"}).
			AddRow(userID.String(), "encoded-hash", time.Now()))

	cred, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, userID, cred.UserID)
	assert.Equal(t, "encoded-hash", cred.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "credentials" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "password_hash", "created_at"}))

	cred, err := repo.FindByUsername(context.Background(), "nobody")

	assert.Nil(t, cred)
	assert.True(t, errors.Is(err, repository.ErrCredentialNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

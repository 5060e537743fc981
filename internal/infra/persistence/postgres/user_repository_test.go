package postgres

import (
	"context"
	"testing"

	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_ReturnsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	generatedID := uuid.New()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID.String()))

	user := &entity.User{Username: "alice"}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, generatedID, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.User{Username: "alice"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

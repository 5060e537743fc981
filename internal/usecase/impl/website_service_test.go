package impl

import (
	"context"
	"testing"

	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	mockRepo "webmark/internal/mocks/repository"
	"webmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type websiteServiceFixtures struct {
	service     usecase.WebsiteUsecase
	websiteRepo *mockRepo.MockWebsiteRepository
}

func createTestWebsiteService(t *testing.T) websiteServiceFixtures {
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)

	service := NewWebsiteService(WebsiteServiceParams{
		WebsiteRepo: websiteRepo,
		Logger:      newDiscardLogger(),
	})

	return websiteServiceFixtures{
		service:     service,
		websiteRepo: websiteRepo,
	}
}

func TestWebsiteService_CreateWebsite_Success(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	generatedID := uuid.New()
	input := &usecase.CreateWebsiteInput{URL: "https://example.com"}

	fx.websiteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Website")).
		Run(func(ctx context.Context, website *entity.Website) {
			assert.Equal(t, ownerID, website.UserID)
			assert.Equal(t, input.URL, website.URL)
			website.ID = generatedID
		}).
		Return(nil)

	output, err := fx.service.CreateWebsite(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, generatedID, output.Website.ID)
	assert.Equal(t, ownerID, output.Website.UserID)
}

func TestWebsiteService_CreateWebsite_RepositoryFailure(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateWebsiteInput{URL: "https://example.com"}

	fx.websiteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Website")).
		Return(errors.New("connection refused"))

	output, err := fx.service.CreateWebsite(ctx, ownerID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestWebsiteService_GetWebsite_Success(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{
		ID:     uuid.New(),
		UserID: ownerID,
		URL:    "https://example.com",
	}

	fx.websiteRepo.EXPECT().
		FindByIDAndOwner(ctx, website.ID, ownerID).
		Return(website, nil)

	output, err := fx.service.GetWebsite(ctx, website.ID, ownerID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, website, output.Website)
}

func TestWebsiteService_GetWebsite_NotFound(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	ownerID := uuid.New()

	fx.websiteRepo.EXPECT().
		FindByIDAndOwner(ctx, websiteID, ownerID).
		Return(nil, repository.ErrWebsiteNotFound)

	output, err := fx.service.GetWebsite(ctx, websiteID, ownerID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWebsiteNotFound))
}

func TestWebsiteService_GetWebsite_RepositoryFailure(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	ownerID := uuid.New()

	fx.websiteRepo.EXPECT().
		FindByIDAndOwner(ctx, websiteID, ownerID).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.GetWebsite(ctx, websiteID, ownerID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrWebsiteNotFound))
}

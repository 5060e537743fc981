package impl

import (
	"context"
	"testing"

	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	mockRepo "webmark/internal/mocks/repository"
	mockSvc "webmark/internal/mocks/service"
	"webmark/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        usecase.UserUsecase
	txManager      *mockRepo.MockTransactionManager
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})

	return userServiceFixtures{
		service:        service,
		txManager:      txManager,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Username: "alice",
		Password: "Password123!",
	}
	generatedID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("$argon2id$encoded", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = generatedID
				}).
				Return(nil)

			mockCredentialRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					assert.Equal(t, generatedID, credential.UserID)
					assert.Equal(t, "$argon2id$encoded", credential.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, generatedID, output.UserID)
}

func TestUserService_SignUp_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("argon2 failed"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_SignUp_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$argon2id$encoded", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrUserAlreadyExists.WrapMessage("username taken"))

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user during sign-up"))

	output, err := fx.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_SignIn_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Username: "alice",
		Password: "Password123!",
	}

	credential := &entity.Credential{
		UserID:       uuid.New(),
		PasswordHash: "$argon2id$encoded",
	}

	fx.credentialRepo.EXPECT().FindByUsername(ctx, input.Username).Return(credential, nil)
	fx.hasher.EXPECT().Check(input.Password, credential.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(credential.UserID).Return("signed.jwt.token", nil)

	output, err := fx.service.SignIn(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestUserService_SignIn_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Username: "nobody",
		Password: "Password123!",
	}

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, repository.ErrCredentialNotFound)

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Username: "alice",
		Password: "wrong-password",
	}

	credential := &entity.Credential{
		UserID:       uuid.New(),
		PasswordHash: "$argon2id$encoded",
	}

	fx.credentialRepo.EXPECT().FindByUsername(ctx, input.Username).Return(credential, nil)
	fx.hasher.EXPECT().Check(input.Password, credential.PasswordHash).Return(false)

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_SignIn_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Username: "alice",
		Password: "Password123!",
	}

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, input.Username).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// Infrastructure failures must not masquerade as bad credentials.
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_SignIn_TokenIssueFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Username: "alice",
		Password: "Password123!",
	}

	credential := &entity.Credential{
		UserID:       uuid.New(),
		PasswordHash: "$argon2id$encoded",
	}

	fx.credentialRepo.EXPECT().FindByUsername(ctx, input.Username).Return(credential, nil)
	fx.hasher.EXPECT().Check(input.Password, credential.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(credential.UserID).Return("", errors.New("signing failed"))

	output, err := fx.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

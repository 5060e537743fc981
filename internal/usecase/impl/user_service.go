// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "webmark/internal/delivery/context"
	"webmark/internal/domain/entity"
	domainerrors "webmark/internal/domain/errors"
	"webmark/internal/domain/repository"
	"webmark/internal/domain/service"
	"webmark/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new user: hash the password, then insert the user and
// its credential in one transaction. Duplicates are detected solely by the
// database unique index, so concurrent sign-ups with the same username
// resolve to exactly one winner.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("username", input.Username))

	// Hashing is CPU-bound; keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during sign-up")
	}

	newUser := &entity.User{Username: input.Username}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign-up")
		}

		newCredential := &entity.Credential{
			UserID:       newUser.ID,
			PasswordHash: hashedPassword,
		}
		if err := repoFactory.CredentialRepo().Create(ctx, newCredential); err != nil {
			return errors.Wrap(err, "failed to create credential during sign-up")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return &usecase.SignUpOutput{UserID: newUser.ID}, nil
}

// SignIn authenticates a user and issues a session token. An unknown
// username and a wrong password both surface as ErrInvalidCredentials: the
// response must not help anyone enumerate accounts.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("username", input.Username))

	credential, err := srv.credentialRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to load credential for sign-in")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	token, err := srv.tokenService.Issue(credential.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during sign-in", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue token during sign-in")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Any("userID", credential.UserID))

	return &usecase.SignInOutput{Token: token}, nil
}

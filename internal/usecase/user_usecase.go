// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Username string
	Password string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's identifier.
type SignUpOutput struct {
	UserID uuid.UUID
}

// SignInOutput returns the session token after successful authentication.
type SignInOutput struct {
	Token string
}

// UserUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"webmark/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. Username uniqueness is enforced by the
	// storage layer's unique index, not by a prior existence check, so
	// concurrent sign-ups with the same username cannot race past it.
	Create(ctx context.Context, user *entity.User) error
}

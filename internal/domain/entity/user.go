// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries only what is needed to
// identify an account; the login secret lives on the Credential entity.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // The login name. Unique across the system, enforced by the database.
	CreatedAt time.Time // Timestamp of when this account was created.
}

// Credential is the hashed-password record backing a user's login.
// Exactly one credential exists per user.
type Credential struct {
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // The argon2id encoded hash. The raw password is never stored.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Website is a record registered by an authenticated user. It is exclusively
// owned by that user: lookups are always scoped to the owner, so a website is
// invisible to every other account.
type Website struct {
	ID        uuid.UUID // The unique identifier for the website record.
	UserID    uuid.UUID // The owning user. Ownership is a foreign-key relation, never an embedded object.
	URL       string    // The registered URL.
	CreatedAt time.Time // Timestamp of when this record was created.
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteModel mirrors the 'websites' table. Lookups always filter on both ID
// and UserID, so the composite index covers the only read path.
type WebsiteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_websites_user_id"`
	URL       string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WebsiteModel) TableName() string {
	return "websites"
}

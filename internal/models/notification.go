package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a write-once message for a user, optionally carrying a
// deep link into the frontend.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      string    `gorm:"type:text" json:"link,omitempty"`
	Accepted  bool      `gorm:"default:false" json:"accepted"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a write-once platform rating left by a user.
type Feedback struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FeedbackText string    `gorm:"type:text;not null" json:"feedback_text"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

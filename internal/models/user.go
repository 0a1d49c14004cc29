package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
)

// User is the shared identity record for job seekers and recruiters.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName    string         `gorm:"size:255;not null" json:"full_name"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"size:20;not null" json:"role"`
	ImageURL    string         `gorm:"type:text" json:"image_url,omitempty"`
	AppliedJobs []uuid.UUID    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"applied_jobs"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasApplied reports whether the user already tracks jobID in their applied list.
func (u *User) HasApplied(jobID uuid.UUID) bool {
	for _, id := range u.AppliedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateStatus is the position a user holds on a job posting. A user is a
// member of at most one of the four candidate lists at any time.
type CandidateStatus string

const (
	StatusNone     CandidateStatus = "none"
	StatusApplied  CandidateStatus = "applied"
	StatusSelected CandidateStatus = "selected"
	StatusAccepted CandidateStatus = "accepted"
	StatusRejected CandidateStatus = "rejected"
)

// ValidCandidateStatus reports whether s names a known status.
func ValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case StatusNone, StatusApplied, StatusSelected, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Job is a recruiter's posting together with its four candidate lists.
type Job struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text;not null" json:"description"`
	Requirements    string         `gorm:"type:text;not null" json:"requirements"`
	ExperienceYears string         `gorm:"size:50" json:"experience_years"`
	Email           string         `gorm:"size:255;not null" json:"email"`
	PhoneNumber     string         `gorm:"size:50;not null" json:"phone_number"`
	LogoURL         string         `gorm:"type:text" json:"logo_url"`
	HRQuestions     string         `gorm:"type:text" json:"hr_questions"`
	AppliedUsers    []uuid.UUID    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"applied_users"`
	AcceptedUsers   []uuid.UUID    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"accepted_users"`
	RejectedUsers   []uuid.UUID    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"rejected_users"`
	SelectedUsers   []uuid.UUID    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"selected_users"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// VectorText is the text indexed and queried in the vector-search service.
func (j *Job) VectorText() string {
	return j.Title + j.Description + j.ExperienceYears + j.Requirements
}

// CandidateStatusOf returns the list userID currently occupies.
func (j *Job) CandidateStatusOf(userID uuid.UUID) CandidateStatus {
	switch {
	case containsID(j.AppliedUsers, userID):
		return StatusApplied
	case containsID(j.SelectedUsers, userID):
		return StatusSelected
	case containsID(j.AcceptedUsers, userID):
		return StatusAccepted
	case containsID(j.RejectedUsers, userID):
		return StatusRejected
	}
	return StatusNone
}

// SetCandidateStatus removes userID from all four lists and then inserts it
// into the list named by status. StatusNone only removes. The pre-removal
// makes the operation idempotent and keeps the lists disjoint.
func (j *Job) SetCandidateStatus(userID uuid.UUID, status CandidateStatus) {
	j.AppliedUsers = removeID(j.AppliedUsers, userID)
	j.AcceptedUsers = removeID(j.AcceptedUsers, userID)
	j.RejectedUsers = removeID(j.RejectedUsers, userID)
	j.SelectedUsers = removeID(j.SelectedUsers, userID)

	switch status {
	case StatusApplied:
		j.AppliedUsers = append(j.AppliedUsers, userID)
	case StatusAccepted:
		j.AcceptedUsers = append(j.AcceptedUsers, userID)
	case StatusRejected:
		j.RejectedUsers = append(j.RejectedUsers, userID)
	case StatusSelected:
		j.SelectedUsers = append(j.SelectedUsers, userID)
	}
}

// HasApplicant reports whether userID is already in the applied list.
func (j *Job) HasApplicant(userID uuid.UUID) bool {
	return containsID(j.AppliedUsers, userID)
}

func containsID(list []uuid.UUID, id uuid.UUID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(list []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

package dto

import (
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/models"
)

type UpdateJobRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Requirements    *string `json:"requirements"`
	ExperienceYears *string `json:"experience_years"`
	Email           *string `json:"email"`
	PhoneNumber     *string `json:"phone_number"`
	HRQuestions     *string `json:"hr_questions"`
}

type JobSearchRequest struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type JobMatch struct {
	Job           models.Job `json:"job"`
	MatchingScore float64    `json:"matching_score"`
}

type UpdateUserStatusRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"`
}

type ApplicantInfo struct {
	UserID        uuid.UUID          `json:"user_id"`
	FullName      string             `json:"full_name"`
	Email         string             `json:"email"`
	CVLink        string             `json:"cv_link,omitempty"`
	VideoLink     string             `json:"video_link,omitempty"`
	EmotionLevels map[string]float64 `json:"emotion_levels,omitempty"`
}

type ApplicantsResponse struct {
	Selected []ApplicantInfo `json:"selected"`
	Accepted []ApplicantInfo `json:"accepted"`
	Rejected []ApplicantInfo `json:"rejected"`
}

type CreateJobResponse struct {
	Job  models.Job `json:"job"`
	Note string     `json:"note,omitempty"`
}

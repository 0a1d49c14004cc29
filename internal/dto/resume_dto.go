package dto

import (
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/models"
)

type CreateResumeTextRequest struct {
	ResumeText      string `json:"resume_text"`
	ExperienceYears *int   `json:"experience_years"`
}

type ResumeSearchRequest struct {
	QueryText string `json:"query_text"`
	NResults  int    `json:"n_results"`
}

// ResumeMatch carries one resume search hit. Enrichment fields are nil when
// the vector index knows an id the database does not.
type ResumeMatch struct {
	ResumeID      string         `json:"resume_id"`
	MatchingScore float64        `json:"matching_score"`
	Resume        *models.Resume `json:"resume"`
	FullName      *string        `json:"full_name"`
	Email         *string        `json:"email"`
}

type ResumeSearchResponse struct {
	Results    []ResumeMatch `json:"results"`
	MissingIDs []string      `json:"missing_ids,omitempty"`
}

type UpdatePersonalityRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Text   string    `json:"text"`
}

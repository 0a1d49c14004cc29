package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumePage is one OCR-extracted page of an uploaded CV.
type ResumePage struct {
	PageNumber int    `json:"page_number"`
	Content    string `json:"content"`
}

// JobVideoLink is an interview-video URL recorded for one job application.
type JobVideoLink struct {
	JobID uuid.UUID `json:"job_id"`
	Link  string    `json:"link"`
}

// JobEmotionLevel is the emotion distribution predicted for one job's
// interview video.
type JobEmotionLevel struct {
	JobID  uuid.UUID          `json:"job_id"`
	Levels map[string]float64 `json:"levels"`
}

// Resume holds one user's CV content plus the annotations produced by the
// external prediction services. One row per user, upsert semantics.
type Resume struct {
	ID               uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CVLink           string            `gorm:"type:text" json:"cv_link"`
	OCRContent       [][]ResumePage    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"ocr_content"`
	ResumeText       string            `gorm:"type:text" json:"resume_text"`
	VideoLinks       []JobVideoLink    `gorm:"type:jsonb;serializer:json;default:'[]'" json:"video_links"`
	EmotionLevels    []JobEmotionLevel `gorm:"type:jsonb;serializer:json;default:'[]'" json:"emotion_levels"`
	PersonalityText  string            `gorm:"type:text" json:"personality_text"`
	PersonalityLevel map[string]string `gorm:"type:jsonb;serializer:json;default:'{}'" json:"personality_level"`
	ExperienceYears  *int              `json:"experience_years,omitempty"`
	UploadedAt       time.Time         `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (Resume) TableName() string {
	return "resumes"
}

// FlattenedText is the text synchronized to the vector-search index: the
// content of the first OCR page, matching what the index was built from.
func (r *Resume) FlattenedText() string {
	if len(r.OCRContent) > 0 && len(r.OCRContent[0]) > 0 {
		return r.OCRContent[0][0].Content
	}
	return ""
}

// VideoLinkFor returns the interview video recorded for jobID, if any.
func (r *Resume) VideoLinkFor(jobID uuid.UUID) string {
	for _, v := range r.VideoLinks {
		if v.JobID == jobID {
			return v.Link
		}
	}
	return ""
}

// EmotionLevelFor returns the emotion distribution recorded for jobID, if any.
func (r *Resume) EmotionLevelFor(jobID uuid.UUID) map[string]float64 {
	for _, e := range r.EmotionLevels {
		if e.JobID == jobID {
			return e.Levels
		}
	}
	return nil
}

// SetVideoLink inserts or replaces the video link for jobID.
func (r *Resume) SetVideoLink(jobID uuid.UUID, link string) {
	for i := range r.VideoLinks {
		if r.VideoLinks[i].JobID == jobID {
			r.VideoLinks[i].Link = link
			return
		}
	}
	r.VideoLinks = append(r.VideoLinks, JobVideoLink{JobID: jobID, Link: link})
}

// SetEmotionLevel inserts or replaces the emotion distribution for jobID.
func (r *Resume) SetEmotionLevel(jobID uuid.UUID, levels map[string]float64) {
	for i := range r.EmotionLevels {
		if r.EmotionLevels[i].JobID == jobID {
			r.EmotionLevels[i].Levels = levels
			return
		}
	}
	r.EmotionLevels = append(r.EmotionLevels, JobEmotionLevel{JobID: jobID, Levels: levels})
}

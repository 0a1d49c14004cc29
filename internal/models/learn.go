package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LearningTypeSpeed  = "Speed Type Learner"
	LearningTypeMedium = "Medium Type Learner"
	LearningTypeSlow   = "Slow Type Learner"
)

// QuizQuestion is one generated question stored with a quiz attempt.
type QuizQuestion struct {
	Question      string   `json:"question"`
	AnswerChoices []string `json:"answer_choices"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// QuizAttempt is one run of generated questions for a topic.
type QuizAttempt struct {
	Topic          string         `json:"topic"`
	Score          int            `json:"score"`
	TimeTaken      int            `json:"time_taken"`
	CorrectAnswers int            `json:"correct_answers"`
	TotalQuestions int            `json:"total_questions"`
	AttemptCount   int            `json:"attempt_count"`
	LearningType   string         `json:"learning_type"`
	Questions      []QuizQuestion `json:"questions"`
	StartedAt      time.Time      `json:"started_at"`
}

// LearningRecord tracks one user's learning-type classification and their
// quiz history. One row per user.
type LearningRecord struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	LearningType       string        `gorm:"size:50;default:''" json:"learning_type"`
	LearningTypePoints int           `gorm:"default:0" json:"learning_type_points"`
	AttemptCount       int           `gorm:"default:0" json:"attempt_count"`
	QuizAttempts       []QuizAttempt `gorm:"type:jsonb;serializer:json;default:'[]'" json:"quiz_attempts"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (LearningRecord) TableName() string {
	return "learning_records"
}

// TopicAttempts counts how many quiz attempts exist for topic.
func (l *LearningRecord) TopicAttempts(topic string) int {
	n := 0
	for _, a := range l.QuizAttempts {
		if a.Topic == topic {
			n++
		}
	}
	return n
}

// LatestAttempt returns the most recent quiz attempt, or nil.
func (l *LearningRecord) LatestAttempt() *QuizAttempt {
	if len(l.QuizAttempts) == 0 {
		return nil
	}
	return &l.QuizAttempts[len(l.QuizAttempts)-1]
}

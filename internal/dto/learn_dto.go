package dto

import (
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/models"
)

type SaveLearningTypeRequest struct {
	LearningTypePoints int `json:"learning_type_points"`
}

type StartTopicRequest struct {
	Topic string `json:"topic"`
}

type SubmitQuizRequest struct {
	CorrectAnswers int `json:"correct_answers"`
	TotalQuestions int `json:"total_questions"`
	TimeTaken      int `json:"time_taken"`
}

type QuizQuestionsResponse struct {
	Topic     string                `json:"topic"`
	Questions []models.QuizQuestion `json:"questions"`
}

type LearningResult struct {
	UserID        uuid.UUID           `json:"user_id"`
	FullName      string              `json:"full_name"`
	LearningType  string              `json:"learning_type"`
	AttemptCount  int                 `json:"attempt_count"`
	LatestAttempt *models.QuizAttempt `json:"latest_attempt"`
}

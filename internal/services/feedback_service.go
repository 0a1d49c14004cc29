package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/models"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

func (s *FeedbackService) Add(userID uuid.UUID, req *dto.FeedbackRequest) (*models.Feedback, error) {
	if req.FeedbackText == "" {
		return nil, fmt.Errorf("%w: feedback text is required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	feedback := models.Feedback{
		ID:           uuid.New(),
		UserID:       userID,
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return &feedback, nil
}

func (s *FeedbackService) ListForUser(userID uuid.UUID) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (s *FeedbackService) ListAll() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.db.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista-backend/internal/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyDecided       = errors.New("a decision was already made for this candidate")
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Create(userID uuid.UUID, message, link string) error {
	n := models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Link:    link,
	}
	return s.db.Create(&n).Error
}

func (s *NotificationService) ListForUser(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationService) MarkRead(id, userID uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// Decide records a recruiter's accept/reject decision for a candidate: the
// user moves to the matching candidate list and gets a notification naming
// the job. A candidate already accepted or rejected cannot be decided again.
func (s *NotificationService) Decide(jobID, userID uuid.UUID, accepted bool) error {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		return ErrJobNotFound
	}

	if alreadyDecided(&job, userID) {
		return ErrAlreadyDecided
	}

	status := models.StatusRejected
	verdict := "rejected"
	if accepted {
		status = models.StatusAccepted
		verdict = "accepted"
	}
	job.SetCandidateStatus(userID, status)

	if err := s.db.Model(&job).Updates(candidateListUpdates(&job)).Error; err != nil {
		return fmt.Errorf("failed to update candidate lists: %w", err)
	}

	return s.Create(userID, fmt.Sprintf("You have been %s for the job %q.", verdict, job.Title), "")
}

// alreadyDecided reports whether the candidate already sits in a terminal
// list for this job.
func alreadyDecided(job *models.Job, userID uuid.UUID) bool {
	switch job.CandidateStatusOf(userID) {
	case models.StatusAccepted, models.StatusRejected:
		return true
	}
	return false
}

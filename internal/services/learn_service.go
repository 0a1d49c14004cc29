package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista-backend/internal/config"
	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/ml"
	"github.com/jobvista/jobvista-backend/internal/models"
)

var (
	ErrMaxAttemptsReached = errors.New("maximum quiz attempts reached")
	ErrLearningNotFound   = errors.New("learning record not found")
	ErrNoActiveAttempt    = errors.New("no quiz attempt in progress")
)

type LearnService struct {
	db  *gorm.DB
	cfg *config.Config
	ml  *ml.Client
}

func NewLearnService(db *gorm.DB, cfg *config.Config, mlClient *ml.Client) *LearnService {
	return &LearnService{db: db, cfg: cfg, ml: mlClient}
}

// QuizScore is the percentage of correct answers, rounded to the nearest
// integer.
func QuizScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// ClassifyLearningType maps assessment points to a learning type using the
// configured thresholds.
func ClassifyLearningType(points, speedMin, mediumMin int) string {
	switch {
	case points > speedMin:
		return models.LearningTypeSpeed
	case points >= mediumMin:
		return models.LearningTypeMedium
	default:
		return models.LearningTypeSlow
	}
}

// topicCapReached reports whether the record has exhausted its attempts for
// one topic. Gates StartTopic.
func topicCapReached(r *models.LearningRecord, topic string, limit int) bool {
	return r.TopicAttempts(topic) >= limit
}

// globalCapReached reports whether the record has exhausted its lifetime
// question fetches. Gates FetchQuestions before any upstream call.
func globalCapReached(r *models.LearningRecord, limit int) bool {
	return r.AttemptCount >= limit
}

// SaveLearningType records the user's assessment points and the learning
// type they classify to. Upserts the per-user record.
func (s *LearnService) SaveLearningType(userID uuid.UUID, points int) (*models.LearningRecord, error) {
	learningType := ClassifyLearningType(points, s.cfg.LearningSpeedMin, s.cfg.LearningMediumMin)

	var record models.LearningRecord
	err := s.db.First(&record, "user_id = ?", userID).Error
	switch {
	case err == nil:
		record.LearningTypePoints = points
		record.LearningType = learningType
		if err := s.db.Save(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to update learning record: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.LearningRecord{
			ID:                 uuid.New(),
			UserID:             userID,
			LearningType:       learningType,
			LearningTypePoints: points,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to create learning record: %w", err)
		}
	default:
		return nil, err
	}
	return &record, nil
}

// StartTopic opens a new quiz attempt for the topic. Each topic allows a
// limited number of attempts; at the cap nothing is appended.
func (s *LearnService) StartTopic(userID uuid.UUID, topic string) (*models.LearningRecord, error) {
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}

	record, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	if topicCapReached(record, topic, s.cfg.QuizTopicAttemptLimit) {
		return nil, ErrMaxAttemptsReached
	}

	record.QuizAttempts = append(record.QuizAttempts, models.QuizAttempt{
		Topic:        topic,
		AttemptCount: record.TopicAttempts(topic) + 1,
		LearningType: record.LearningType,
		StartedAt:    time.Now(),
	})
	if err := s.db.Model(record).Update("quiz_attempts", record.QuizAttempts).Error; err != nil {
		return nil, fmt.Errorf("failed to start topic: %w", err)
	}
	return record, nil
}

// FetchQuestions pulls generated questions for the attempt in progress. A
// global attempt counter caps how many question sets a user may ever fetch;
// at the cap the question service is not called.
func (s *LearnService) FetchQuestions(ctx context.Context, userID uuid.UUID) (*dto.QuizQuestionsResponse, error) {
	record, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	attempt := record.LatestAttempt()
	if attempt == nil {
		return nil, ErrNoActiveAttempt
	}

	if globalCapReached(record, s.cfg.QuizGlobalAttemptLimit) {
		return nil, ErrMaxAttemptsReached
	}

	questions, err := s.ml.GenerateQuestions(ctx, attempt.Topic, record.LearningType)
	if err != nil {
		return nil, err
	}

	attempt.Questions = make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		attempt.Questions[i] = models.QuizQuestion{
			Question:      q.Question,
			AnswerChoices: q.AnswerChoices,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	record.AttemptCount++

	if err := s.db.Model(record).Updates(map[string]interface{}{
		"attempt_count": record.AttemptCount,
		"quiz_attempts": record.QuizAttempts,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	return &dto.QuizQuestionsResponse{Topic: attempt.Topic, Questions: attempt.Questions}, nil
}

// SubmitQuiz closes the attempt in progress with the user's results.
func (s *LearnService) SubmitQuiz(userID uuid.UUID, req *dto.SubmitQuizRequest) (*models.LearningRecord, error) {
	if req.TotalQuestions <= 0 {
		return nil, fmt.Errorf("%w: total_questions must be positive", ErrValidation)
	}

	record, err := s.get(userID)
	if err != nil {
		return nil, err
	}

	attempt := record.LatestAttempt()
	if attempt == nil {
		return nil, ErrNoActiveAttempt
	}

	attempt.Score = QuizScore(req.CorrectAnswers, req.TotalQuestions)
	attempt.CorrectAnswers = req.CorrectAnswers
	attempt.TotalQuestions = req.TotalQuestions
	attempt.TimeTaken = req.TimeTaken

	if err := s.db.Model(record).Update("quiz_attempts", record.QuizAttempts).Error; err != nil {
		return nil, fmt.Errorf("failed to submit quiz: %w", err)
	}
	return record, nil
}

// Results returns every user's learning type and most recent attempt.
func (s *LearnService) Results() ([]dto.LearningResult, error) {
	var records []models.LearningRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, err
	}

	results := make([]dto.LearningResult, 0, len(records))
	for i := range records {
		r := &records[i]

		var user models.User
		fullName := ""
		if err := s.db.First(&user, "id = ?", r.UserID).Error; err == nil {
			fullName = user.FullName
		}

		results = append(results, dto.LearningResult{
			UserID:        r.UserID,
			FullName:      fullName,
			LearningType:  r.LearningType,
			AttemptCount:  r.AttemptCount,
			LatestAttempt: r.LatestAttempt(),
		})
	}
	return results, nil
}

func (s *LearnService) ResultsForUser(userID uuid.UUID) (*models.LearningRecord, error) {
	return s.get(userID)
}

func (s *LearnService) get(userID uuid.UUID) (*models.LearningRecord, error) {
	var record models.LearningRecord
	if err := s.db.First(&record, "user_id = ?", userID).Error; err != nil {
		return nil, ErrLearningNotFound
	}
	return &record, nil
}

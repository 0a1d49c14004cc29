package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista-backend/internal/config"
	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/matching"
	"github.com/jobvista/jobvista-backend/internal/ml"
	"github.com/jobvista/jobvista-backend/internal/models"
	"github.com/jobvista/jobvista-backend/internal/storage"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrJobsMissing    = errors.New("some jobs were not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrResumeRequired = errors.New("a resume is required before applying")
	ErrInvalidStatus  = errors.New("invalid candidate status")
)

const defaultSearchCount = 10

// notifier is the slice of NotificationService the job pipeline needs.
type notifier interface {
	Create(userID uuid.UUID, message, link string) error
}

type JobService struct {
	db            *gorm.DB
	cfg           *config.Config
	ml            *ml.Client
	store         *storage.ObjectStore
	notifications notifier
}

func NewJobService(db *gorm.DB, cfg *config.Config, mlClient *ml.Client, store *storage.ObjectStore, notifications notifier) *JobService {
	return &JobService{db: db, cfg: cfg, ml: mlClient, store: store, notifications: notifications}
}

// candidateListUpdates is the column set every candidate-list write must
// persist. SetCandidateStatus mutates all four lists, so persisting a subset
// would silently drop removals.
func candidateListUpdates(j *models.Job) map[string]interface{} {
	return map[string]interface{}{
		"applied_users":  j.AppliedUsers,
		"accepted_users": j.AcceptedUsers,
		"rejected_users": j.RejectedUsers,
		"selected_users": j.SelectedUsers,
	}
}

// Create uploads the logo, persists the job, then indexes it and notifies
// matching candidates. The matching pipeline is best-effort: the job is
// created even when the vector service is down, and the returned note tells
// the caller notifications were skipped.
func (s *JobService) Create(ctx context.Context, job *models.Job, logoPath string, logoFH *multipart.FileHeader) (string, error) {
	defer os.Remove(logoPath)

	if job.Title == "" || job.Description == "" || job.Requirements == "" || job.Email == "" || job.PhoneNumber == "" {
		return "", fmt.Errorf("%w: title, description, requirements, email and phone number are required", ErrValidation)
	}

	logoURL, err := s.store.Upload(ctx, logoPath, logoFH.Filename, logoFH.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	job.LogoURL = logoURL

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if err := s.db.Create(job).Error; err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}

	return s.notifyMatches(ctx, job), nil
}

func (s *JobService) notifyMatches(ctx context.Context, job *models.Job) string {
	const note = "job created, but candidate matching is temporarily unavailable"

	if err := s.ml.IndexJob(ctx, job.ID.String(), job.VectorText()); err != nil {
		slog.Warn("job vector indexing failed", "job_id", job.ID, "error", err)
		return note
	}

	matches, err := s.ml.SearchResumes(ctx, job.VectorText(), s.cfg.MatchNotifyLimit)
	if err != nil {
		slog.Warn("resume matching failed", "job_id", job.ID, "error", err)
		return note
	}

	link := s.cfg.PublicBaseURL + "/jobs/" + job.ID.String()
	for _, m := range matches {
		var resume models.Resume
		if err := s.db.First(&resume, "id = ?", m.ID).Error; err != nil {
			continue
		}
		msg := fmt.Sprintf("New job %q matches your resume with a %.2f%% match.", job.Title, matching.Score(m.Distance))
		if err := s.notifications.Create(resume.UserID, msg, link); err != nil {
			slog.Warn("match notification failed", "job_id", job.ID, "user_id", resume.UserID, "error", err)
		}
	}
	return ""
}

// Search runs a vector query over indexed jobs. Every hit must exist locally;
// an index entry without a row means the stores have diverged and the whole
// search fails.
func (s *JobService) Search(ctx context.Context, query string, count int) ([]dto.JobMatch, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrValidation)
	}
	if count <= 0 {
		count = defaultSearchCount
	}

	matches, err := s.ml.SearchJobs(ctx, query, count)
	if err != nil {
		return nil, err
	}

	results := make([]dto.JobMatch, 0, len(matches))
	for _, m := range matches {
		var job models.Job
		if err := s.db.First(&job, "id = ?", m.ID).Error; err != nil {
			return nil, ErrJobsMissing
		}
		results = append(results, dto.JobMatch{Job: job, MatchingScore: matching.Score(m.Distance)})
	}
	return results, nil
}

func (s *JobService) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (s *JobService) GetByID(jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

func (s *JobService) ListByOwner(ownerID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Update applies the non-nil fields and re-indexes the job text when any of
// the indexed fields changed.
func (s *JobService) Update(ctx context.Context, jobID uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	reindex := false
	if req.Title != nil {
		job.Title = *req.Title
		reindex = true
	}
	if req.Description != nil {
		job.Description = *req.Description
		reindex = true
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
		reindex = true
	}
	if req.ExperienceYears != nil {
		job.ExperienceYears = *req.ExperienceYears
		reindex = true
	}
	if req.Email != nil {
		job.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		job.PhoneNumber = *req.PhoneNumber
	}
	if req.HRQuestions != nil {
		job.HRQuestions = *req.HRQuestions
	}

	if err := s.db.Save(job).Error; err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if reindex {
		if err := s.ml.IndexJob(ctx, job.ID.String(), job.VectorText()); err != nil {
			slog.Warn("job re-indexing failed", "job_id", job.ID, "error", err)
		}
	}
	return job, nil
}

// Delete removes the row first and the vector entry second. A vector
// deletion failure is surfaced even though the row is already gone, so the
// caller knows the index holds a stale entry.
func (s *JobService) Delete(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.GetByID(jobID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(job).Error; err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return s.ml.DeleteJob(ctx, jobID.String())
}

// Apply adds the user to the job's applied list and the job to the user's
// applied list. A resume must exist first.
func (s *JobService) Apply(jobID, userID uuid.UUID) error {
	job, err := s.GetByID(jobID)
	if err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	var resume models.Resume
	if err := s.db.First(&resume, "user_id = ?", userID).Error; err != nil {
		return ErrResumeRequired
	}

	if job.HasApplicant(userID) || user.HasApplied(jobID) {
		return ErrAlreadyApplied
	}

	job.SetCandidateStatus(userID, models.StatusApplied)
	user.AppliedJobs = append(user.AppliedJobs, jobID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(job).Updates(candidateListUpdates(job)).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("applied_jobs", user.AppliedJobs).Error
	})
}

func (s *JobService) ListApplied(userID uuid.UUID) ([]models.Job, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	jobs := make([]models.Job, 0, len(user.AppliedJobs))
	if len(user.AppliedJobs) == 0 {
		return jobs, nil
	}
	if err := s.db.Where("id IN ?", user.AppliedJobs).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// SetCandidateStatus moves the user to the named candidate list. Moving to
// selected also notifies the user to record an HR interview video.
func (s *JobService) SetCandidateStatus(jobID, userID uuid.UUID, status models.CandidateStatus) (*models.Job, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if !models.ValidCandidateStatus(status) {
		return nil, ErrInvalidStatus
	}

	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	job.SetCandidateStatus(userID, status)

	if err := s.db.Model(job).Updates(candidateListUpdates(job)).Error; err != nil {
		return nil, fmt.Errorf("failed to update candidate lists: %w", err)
	}

	s.notifyStatusChange(job, userID, status)
	return job, nil
}

// notifyStatusChange emits the follow-up message a status move requires.
// Only selection triggers one: the candidate is asked to record an HR
// interview video for the job.
func (s *JobService) notifyStatusChange(job *models.Job, userID uuid.UUID, status models.CandidateStatus) {
	if status != models.StatusSelected {
		return
	}

	link := s.cfg.PublicBaseURL + "/jobs/" + job.ID.String()
	msg := "You are selected for this job. Please upload a video for the HR interview."
	if err := s.notifications.Create(userID, msg, link); err != nil {
		slog.Warn("selection notification failed", "job_id", job.ID, "user_id", userID, "error", err)
	}
}

// Applicants returns the selected, accepted and rejected lists enriched with
// each candidate's name, CV link and per-job interview artifacts.
func (s *JobService) Applicants(jobID uuid.UUID) (*dto.ApplicantsResponse, error) {
	job, err := s.GetByID(jobID)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicantsResponse{
		Selected: s.enrichApplicants(jobID, job.SelectedUsers),
		Accepted: s.enrichApplicants(jobID, job.AcceptedUsers),
		Rejected: s.enrichApplicants(jobID, job.RejectedUsers),
	}, nil
}

func (s *JobService) enrichApplicants(jobID uuid.UUID, userIDs []uuid.UUID) []dto.ApplicantInfo {
	infos := make([]dto.ApplicantInfo, 0, len(userIDs))
	for _, id := range userIDs {
		var user models.User
		if err := s.db.First(&user, "id = ?", id).Error; err != nil {
			continue
		}

		info := dto.ApplicantInfo{
			UserID:   id,
			FullName: user.FullName,
			Email:    user.Email,
		}
		var resume models.Resume
		if err := s.db.First(&resume, "user_id = ?", id).Error; err == nil {
			info.CVLink = resume.CVLink
			info.VideoLink = resume.VideoLinkFor(jobID)
			info.EmotionLevels = resume.EmotionLevelFor(jobID)
		}
		infos = append(infos, info)
	}
	return infos
}

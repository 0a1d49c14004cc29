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

var ErrResumeNotFound = errors.New("resume not found")

type ResumeService struct {
	db    *gorm.DB
	cfg   *config.Config
	ml    *ml.Client
	store *storage.ObjectStore
}

func NewResumeService(db *gorm.DB, cfg *config.Config, mlClient *ml.Client, store *storage.ObjectStore) *ResumeService {
	return &ResumeService{db: db, cfg: cfg, ml: mlClient, store: store}
}

// UpsertFromPDF runs the uploaded CV through OCR, stores the file, upserts
// the user's resume row and re-syncs the vector index. The index sync is
// part of the operation: if it fails the caller gets an error even though
// the row was written.
func (s *ResumeService) UpsertFromPDF(ctx context.Context, userID uuid.UUID, tempPath string, fh *multipart.FileHeader) (*models.Resume, error) {
	defer os.Remove(tempPath)

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	pages, err := s.ml.ExtractPDF(ctx, fh.Filename, data)
	if err != nil {
		return nil, err
	}

	text := firstPageContent(pages)
	if text == "" {
		return nil, fmt.Errorf("%w: no text could be extracted from the file", ErrValidation)
	}

	cvLink, err := s.store.Upload(ctx, tempPath, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	resume, err := s.upsert(userID, func(r *models.Resume) {
		r.CVLink = cvLink
		r.OCRContent = convertPages(pages)
		r.ResumeText = text
	})
	if err != nil {
		return nil, err
	}

	if err := s.reSyncVector(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// UpsertFromText upserts the resume from caller-provided summary text,
// skipping OCR and file storage.
func (s *ResumeService) UpsertFromText(ctx context.Context, userID uuid.UUID, req *dto.CreateResumeTextRequest) (*models.Resume, error) {
	if req.ResumeText == "" {
		return nil, fmt.Errorf("%w: resume text is required", ErrValidation)
	}

	resume, err := s.upsert(userID, func(r *models.Resume) {
		r.ResumeText = req.ResumeText
		if req.ExperienceYears != nil {
			r.ExperienceYears = req.ExperienceYears
		}
	})
	if err != nil {
		return nil, err
	}

	if err := s.reSyncVector(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) upsert(userID uuid.UUID, apply func(*models.Resume)) (*models.Resume, error) {
	var resume models.Resume
	err := s.db.First(&resume, "user_id = ?", userID).Error
	switch {
	case err == nil:
		apply(&resume)
		if err := s.db.Save(&resume).Error; err != nil {
			return nil, fmt.Errorf("failed to update resume: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		resume = models.Resume{ID: uuid.New(), UserID: userID}
		apply(&resume)
		if err := s.db.Create(&resume).Error; err != nil {
			return nil, fmt.Errorf("failed to create resume: %w", err)
		}
	default:
		return nil, err
	}
	return &resume, nil
}

// reSyncVector replaces the resume's index entry. A failed delete only means
// a stale entry that the insert overwrites, so it is logged and tolerated;
// a failed insert leaves the resume unsearchable and is an error.
func (s *ResumeService) reSyncVector(ctx context.Context, resume *models.Resume) error {
	if err := s.ml.DeleteResume(ctx, resume.ID.String()); err != nil {
		slog.Warn("resume vector delete failed", "resume_id", resume.ID, "error", err)
	}

	text := resume.ResumeText
	if text == "" {
		text = resume.FlattenedText()
	}
	return s.ml.IndexResume(ctx, resume.ID.String(), text)
}

// Search runs a vector query over resumes. Hits without a local row are
// reported in MissingIDs and the search still succeeds.
func (s *ResumeService) Search(ctx context.Context, req *dto.ResumeSearchRequest) (*dto.ResumeSearchResponse, error) {
	if req.QueryText == "" {
		return nil, fmt.Errorf("%w: query_text is required", ErrValidation)
	}
	n := req.NResults
	if n <= 0 {
		n = defaultSearchCount
	}

	matches, err := s.ml.SearchResumes(ctx, req.QueryText, n)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumeSearchResponse{Results: make([]dto.ResumeMatch, 0, len(matches))}
	for _, m := range matches {
		enriched, ok := s.enrich(m)
		if !ok {
			resp.MissingIDs = append(resp.MissingIDs, m.ID)
			continue
		}
		resp.Results = append(resp.Results, enriched)
	}
	return resp, nil
}

// SearchRecommended returns a fixed-size recommendation list. Every hit is
// kept: ids unknown locally come back with nil enrichment fields rather than
// being dropped.
func (s *ResumeService) SearchRecommended(ctx context.Context, query string) ([]dto.ResumeMatch, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrValidation)
	}

	matches, err := s.ml.SearchResumes(ctx, query, s.cfg.RecommendResultLimit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ResumeMatch, 0, len(matches))
	for _, m := range matches {
		enriched, ok := s.enrich(m)
		if !ok {
			enriched = dto.ResumeMatch{ResumeID: m.ID, MatchingScore: matching.Score(m.Distance)}
		}
		results = append(results, enriched)
	}
	return results, nil
}

func (s *ResumeService) enrich(m ml.Match) (dto.ResumeMatch, bool) {
	var resume models.Resume
	if err := s.db.First(&resume, "id = ?", m.ID).Error; err != nil {
		return dto.ResumeMatch{}, false
	}

	enriched := dto.ResumeMatch{
		ResumeID:      m.ID,
		MatchingScore: matching.Score(m.Distance),
		Resume:        &resume,
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", resume.UserID).Error; err == nil {
		enriched.FullName = &user.FullName
		enriched.Email = &user.Email
	}
	return enriched, true
}

// UploadVideo stores an interview video for one job and best-effort runs
// emotion detection on it.
func (s *ResumeService) UploadVideo(ctx context.Context, userID, jobID uuid.UUID, tempPath string, fh *multipart.FileHeader) (*models.Resume, error) {
	defer os.Remove(tempPath)

	var resume models.Resume
	if err := s.db.First(&resume, "user_id = ?", userID).Error; err != nil {
		return nil, ErrResumeNotFound
	}

	url, err := s.store.Upload(ctx, tempPath, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	resume.SetVideoLink(jobID, url)
	if err := s.db.Model(&resume).Update("video_links", resume.VideoLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to save video link: %w", err)
	}

	levels, err := s.ml.PredictEmotion(ctx, url)
	if err != nil {
		slog.Warn("emotion prediction failed", "user_id", userID, "job_id", jobID, "error", err)
		return &resume, nil
	}

	resume.SetEmotionLevel(jobID, levels)
	if err := s.db.Model(&resume).Update("emotion_levels", resume.EmotionLevels).Error; err != nil {
		return nil, fmt.Errorf("failed to save emotion levels: %w", err)
	}
	return &resume, nil
}

// UpdatePersonality predicts traits from the given text and persists both.
// The prediction is the point of the operation, so its failure is an error.
func (s *ResumeService) UpdatePersonality(ctx context.Context, userID uuid.UUID, text string) (*models.Resume, error) {
	if userID == uuid.Nil || text == "" {
		return nil, fmt.Errorf("%w: user id and text are required", ErrValidation)
	}

	var resume models.Resume
	if err := s.db.First(&resume, "user_id = ?", userID).Error; err != nil {
		return nil, ErrResumeNotFound
	}

	traits, err := s.ml.PredictPersonality(ctx, text)
	if err != nil {
		return nil, err
	}

	resume.PersonalityText = text
	resume.PersonalityLevel = traits
	if err := s.db.Model(&resume).Updates(map[string]interface{}{
		"personality_text":  text,
		"personality_level": resume.PersonalityLevel,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to save personality: %w", err)
	}
	return &resume, nil
}

func (s *ResumeService) GetOCRContent(userID uuid.UUID) ([][]models.ResumePage, error) {
	resume, err := s.GetDetails(userID)
	if err != nil {
		return nil, err
	}
	return resume.OCRContent, nil
}

func (s *ResumeService) GetDetails(userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := s.db.First(&resume, "user_id = ?", userID).Error; err != nil {
		return nil, ErrResumeNotFound
	}
	return &resume, nil
}

func firstPageContent(pages [][]ml.Page) string {
	if len(pages) > 0 && len(pages[0]) > 0 {
		return pages[0][0].Content
	}
	return ""
}

func convertPages(pages [][]ml.Page) [][]models.ResumePage {
	out := make([][]models.ResumePage, len(pages))
	for i, group := range pages {
		out[i] = make([]models.ResumePage, len(group))
		for j, p := range group {
			out[i][j] = models.ResumePage{PageNumber: p.PageNumber, Content: p.Content}
		}
	}
	return out
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/ml"
	"github.com/jobvista/jobvista-backend/internal/models"
)

var (
	ErrEmployeeExists   = errors.New("employee details already submitted")
	ErrEmployeeNotFound = errors.New("employee details not found")
)

type EmployeeService struct {
	db *gorm.DB
	ml *ml.Client
}

func NewEmployeeService(db *gorm.DB, mlClient *ml.Client) *EmployeeService {
	return &EmployeeService{db: db, ml: mlClient}
}

// Add files the user's employment-details form. One form per user.
func (s *EmployeeService) Add(userID uuid.UUID, req *dto.EmployeeDetailsRequest) (*models.EmployeeDetails, error) {
	if req.EmployeeName == "" || req.CompanyName == "" {
		return nil, fmt.Errorf("%w: employee name and company name are required", ErrValidation)
	}

	var existing models.EmployeeDetails
	if err := s.db.First(&existing, "user_id = ?", userID).Error; err == nil {
		return nil, ErrEmployeeExists
	}

	details := models.EmployeeDetails{ID: uuid.New(), UserID: userID}
	applyEmployeeRequest(&details, req)

	if err := s.db.Create(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee details: %w", err)
	}
	return &details, nil
}

// Update persists the form fields, then best-effort predicts a personality
// map from the project narrative and stores it.
func (s *EmployeeService) Update(ctx context.Context, userID uuid.UUID, req *dto.EmployeeDetailsRequest) (*models.EmployeeDetails, error) {
	var details models.EmployeeDetails
	if err := s.db.First(&details, "user_id = ?", userID).Error; err != nil {
		return nil, ErrEmployeeNotFound
	}

	applyEmployeeRequest(&details, req)
	if err := s.db.Save(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to update employee details: %w", err)
	}

	if details.HowWorkedOnProject != "" {
		traits, err := s.ml.PredictPersonality(ctx, details.HowWorkedOnProject)
		if err != nil {
			slog.Warn("employee personality prediction failed", "user_id", userID, "error", err)
			return &details, nil
		}
		details.PersonalityLevel = traits
		if err := s.db.Model(&details).Update("personality_level", details.PersonalityLevel).Error; err != nil {
			slog.Warn("employee personality save failed", "user_id", userID, "error", err)
		}
	}
	return &details, nil
}

func (s *EmployeeService) Get(userID uuid.UUID) (*models.EmployeeDetails, error) {
	var details models.EmployeeDetails
	if err := s.db.First(&details, "user_id = ?", userID).Error; err != nil {
		return nil, ErrEmployeeNotFound
	}
	return &details, nil
}

func applyEmployeeRequest(d *models.EmployeeDetails, req *dto.EmployeeDetailsRequest) {
	d.EmployeeName = req.EmployeeName
	d.Position = req.Position
	d.RegistrationNumber = req.RegistrationNumber
	d.CompanyName = req.CompanyName
	d.CompanyEmail = req.CompanyEmail
	d.CompanyPhone = req.CompanyPhone
	d.CompanyAddress = req.CompanyAddress
	d.HRContactName = req.HRContactName
	d.HRContactEmail = req.HRContactEmail
	d.EmploymentStart = req.EmploymentStart
	d.EmploymentEnd = req.EmploymentEnd
	d.WorkProject = req.WorkProject
	d.ProjectDescription = req.ProjectDescription
	d.HowWorkedOnProject = req.HowWorkedOnProject
}

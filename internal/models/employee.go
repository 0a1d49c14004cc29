package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeDetails is the employment-history form a job seeker files for a
// previous company. One form per user.
type EmployeeDetails struct {
	ID                 uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EmployeeName       string            `gorm:"size:255" json:"employee_name"`
	Position           string            `gorm:"size:255" json:"position"`
	RegistrationNumber string            `gorm:"size:100" json:"registration_number"`
	CompanyName        string            `gorm:"size:255" json:"company_name"`
	CompanyEmail       string            `gorm:"size:255" json:"company_email"`
	CompanyPhone       string            `gorm:"size:50" json:"company_phone"`
	CompanyAddress     string            `gorm:"type:text" json:"company_address"`
	HRContactName      string            `gorm:"size:255" json:"hr_contact_name"`
	HRContactEmail     string            `gorm:"size:255" json:"hr_contact_email"`
	EmploymentStart    *time.Time        `json:"employment_start,omitempty"`
	EmploymentEnd      *time.Time        `json:"employment_end,omitempty"`
	WorkProject        string            `gorm:"type:text" json:"work_project"`
	ProjectDescription string            `gorm:"type:text" json:"project_description"`
	HowWorkedOnProject string            `gorm:"type:text" json:"how_worked_on_project"`
	PersonalityLevel   map[string]string `gorm:"type:jsonb;serializer:json;default:'{}'" json:"personality_level"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	DeletedAt          gorm.DeletedAt    `gorm:"index" json:"-"`
}

func (EmployeeDetails) TableName() string {
	return "employee_details"
}

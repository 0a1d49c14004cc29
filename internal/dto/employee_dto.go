package dto

import "time"

type EmployeeDetailsRequest struct {
	EmployeeName       string     `json:"employee_name"`
	Position           string     `json:"position"`
	RegistrationNumber string     `json:"registration_number"`
	CompanyName        string     `json:"company_name"`
	CompanyEmail       string     `json:"company_email"`
	CompanyPhone       string     `json:"company_phone"`
	CompanyAddress     string     `json:"company_address"`
	HRContactName      string     `json:"hr_contact_name"`
	HRContactEmail     string     `json:"hr_contact_email"`
	EmploymentStart    *time.Time `json:"employment_start"`
	EmploymentEnd      *time.Time `json:"employment_end"`
	WorkProject        string     `json:"work_project"`
	ProjectDescription string     `json:"project_description"`
	HowWorkedOnProject string     `json:"how_worked_on_project"`
}

type FeedbackRequest struct {
	FeedbackText string `json:"feedback_text"`
	Rating       int    `json:"rating"`
}

type NotificationDecisionRequest struct {
	JobID    string `json:"job_id"`
	UserID   string `json:"user_id"`
	Accepted bool   `json:"accepted"`
}

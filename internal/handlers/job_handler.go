package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/models"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
	"github.com/jobvista/jobvista-backend/internal/storage"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create takes a multipart form: the job fields plus a required logo file.
func (h *JobHandler) Create(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	logoFH, err := c.FormFile("logo")
	if err != nil {
		return badRequest(c, "A logo file is required")
	}

	job := &models.Job{
		UserID:          userID,
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		Requirements:    c.FormValue("requirements"),
		ExperienceYears: c.FormValue("experience_years"),
		Email:           c.FormValue("email"),
		PhoneNumber:     c.FormValue("phone_number"),
		HRQuestions:     c.FormValue("hr_questions"),
	}

	tempPath, err := storage.StageUpload(c, logoFH)
	if err != nil {
		return fail(c, err)
	}

	note, err := h.jobService.Create(c.UserContext(), job, tempPath, logoFH)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateJobResponse{Job: *job, Note: note})
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	var req dto.JobSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	results, err := h.jobService.Search(c.UserContext(), req.Query, req.Count)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"results": results})
}

func (h *JobHandler) GetAll(c *fiber.Ctx) error {
	jobs, err := h.jobService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	job, err := h.jobService.GetByID(jobID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	job, err := h.jobService.Update(c.UserContext(), jobID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	if err := h.jobService.Delete(c.UserContext(), jobID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

func (h *JobHandler) ListByOwner(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	jobs, err := h.jobService.ListByOwner(ownerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	if err := h.jobService.Apply(jobID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Applied successfully"})
}

func (h *JobHandler) ListApplied(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	jobs, err := h.jobService.ListApplied(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) UpdateUserStatus(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	job, err := h.jobService.SetCandidateStatus(jobID, req.UserID, models.CandidateStatus(req.Status))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

func (h *JobHandler) Applicants(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	resp, err := h.jobService.Applicants(jobID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
	"github.com/jobvista/jobvista-backend/internal/storage"
)

type ResumeHandler struct {
	resumeService *services.ResumeService
}

func NewResumeHandler(resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

func (h *ResumeHandler) CreateFromPDF(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "A CV file is required")
	}

	tempPath, err := storage.StageUpload(c, fh)
	if err != nil {
		return fail(c, err)
	}

	resume, err := h.resumeService.UpsertFromPDF(c.UserContext(), userID, tempPath, fh)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *ResumeHandler) CreateFromText(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateResumeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resume, err := h.resumeService.UpsertFromText(c.UserContext(), userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *ResumeHandler) Search(c *fiber.Ctx) error {
	var req dto.ResumeSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.resumeService.Search(c.UserContext(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ResumeHandler) SearchRecommended(c *fiber.Ctx) error {
	var req dto.ResumeSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	results, err := h.resumeService.SearchRecommended(c.UserContext(), req.QueryText)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}

func (h *ResumeHandler) UploadVideo(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return badRequest(c, "Invalid job id")
	}

	fh, err := c.FormFile("video")
	if err != nil {
		return badRequest(c, "A video file is required")
	}

	tempPath, err := storage.StageUpload(c, fh)
	if err != nil {
		return fail(c, err)
	}

	resume, err := h.resumeService.UploadVideo(c.UserContext(), userID, jobID, tempPath, fh)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resume)
}

func (h *ResumeHandler) UpdatePersonality(c *fiber.Ctx) error {
	var req dto.UpdatePersonalityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resume, err := h.resumeService.UpdatePersonality(c.UserContext(), req.UserID, req.Text)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resume)
}

func (h *ResumeHandler) GetOCRContent(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	content, err := h.resumeService.GetOCRContent(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"content": content})
}

func (h *ResumeHandler) GetDetails(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	resume, err := h.resumeService.GetDetails(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resume)
}

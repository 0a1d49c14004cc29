package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) Add(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	feedback, err := h.feedbackService.Add(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func (h *FeedbackHandler) ListMine(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	feedbacks, err := h.feedbackService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(feedbacks)
}

func (h *FeedbackHandler) ListAll(c *fiber.Ctx) error {
	feedbacks, err := h.feedbackService.ListAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(feedbacks)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
)

type LearnHandler struct {
	learnService *services.LearnService
}

func NewLearnHandler(learnService *services.LearnService) *LearnHandler {
	return &LearnHandler{learnService: learnService}
}

func (h *LearnHandler) SaveLearningType(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SaveLearningTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.learnService.SaveLearningType(userID, req.LearningTypePoints)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

func (h *LearnHandler) StartTopic(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.StartTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.learnService.StartTopic(userID, req.Topic)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

func (h *LearnHandler) FetchQuestions(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.learnService.FetchQuestions(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *LearnHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	record, err := h.learnService.SubmitQuiz(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

func (h *LearnHandler) Results(c *fiber.Ctx) error {
	results, err := h.learnService.Results()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(results)
}

func (h *LearnHandler) ResultsForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	record, err := h.learnService.ResultsForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(record)
}

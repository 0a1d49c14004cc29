package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) Decide(c *fiber.Ctx) error {
	var req dto.NotificationDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return badRequest(c, "Invalid job id")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.notificationService.Decide(jobID, userID, req.Accepted); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Decision recorded"})
}

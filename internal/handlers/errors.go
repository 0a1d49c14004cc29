package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/ml"
	"github.com/jobvista/jobvista-backend/internal/services"
	"github.com/jobvista/jobvista-backend/internal/storage"
)

// fail maps service sentinel errors to HTTP statuses. Unknown errors are
// logged and answered with a generic 500.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrResumeRequired),
		errors.Is(err, services.ErrMaxAttemptsReached),
		errors.Is(err, services.ErrNoActiveAttempt),
		errors.Is(err, services.ErrAlreadyDecided):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrJobsMissing),
		errors.Is(err, services.ErrResumeNotFound),
		errors.Is(err, services.ErrLearningNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrEmployeeNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrEmployeeExists):
		status = fiber.StatusConflict
	case errors.Is(err, ml.ErrServiceUnavailable),
		errors.Is(err, storage.ErrUploadFailed):
		slog.Error("upstream service failure", "path", c.Path(), "error", err)
	default:
		slog.Error("unhandled error", "path", c.Path(), "error", err)
		message = "Internal server error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}

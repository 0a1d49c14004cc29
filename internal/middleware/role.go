package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/models"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
)

// RecruiterRequired gates recruiter-only routes on the role claim.
func RecruiterRequired() fiber.Handler {
	return RoleRequired(models.RoleRecruiter)
}

// RoleRequired rejects requests whose JWT role claim differs from role.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got, err := reqctx.GetRole(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if got != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.EmployeeDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	details, err := h.employeeService.Add(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(details)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.EmployeeDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	details, err := h.employeeService.Update(c.UserContext(), userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(details)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	details, err := h.employeeService.Get(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(details)
}

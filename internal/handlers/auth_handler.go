package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobvista/jobvista-backend/internal/dto"
	"github.com/jobvista/jobvista-backend/internal/reqctx"
	"github.com/jobvista/jobvista-backend/internal/services"
	"github.com/jobvista/jobvista-backend/internal/storage"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.Logout(&req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
		ImageURL: user.ImageURL,
	})
}

func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	userID, err := reqctx.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "An image file is required")
	}

	tempPath, err := storage.StageUpload(c, fh)
	if err != nil {
		return fail(c, err)
	}

	url, err := h.authService.UploadAvatar(c.UserContext(), userID, tempPath, fh)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"image_url": url})
}

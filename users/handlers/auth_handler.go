package handlers

import (
	"github.com/gofiber/fiber/v2"

	usererrors "github.com/gojobly/jobly/users/errors"
	"github.com/gojobly/jobly/users/models"
	"github.com/gojobly/jobly/users/services"
	"github.com/gojobly/jobly/users/validation"
)

// AuthHandler handles registration and token issuance
type AuthHandler struct {
	service services.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return usererrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateRegisterRequest(&req); err != nil {
		return usererrors.HandleValidationError(c, err.Error())
	}

	token, err := h.service.Register(c.Context(), &req)
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// Token handles POST /auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return usererrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateLoginRequest(&req); err != nil {
		return usererrors.HandleValidationError(c, err.Error())
	}

	token, err := h.service.Authenticate(c.Context(), &req)
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

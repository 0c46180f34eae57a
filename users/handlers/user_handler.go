package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/gojobly/jobly/applications/errors"
	appservices "github.com/gojobly/jobly/applications/services"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	usererrors "github.com/gojobly/jobly/users/errors"
	"github.com/gojobly/jobly/users/models"
	"github.com/gojobly/jobly/users/services"
	"github.com/gojobly/jobly/users/validation"
)

// UserHandler handles user HTTP endpoints
type UserHandler struct {
	service      services.UserService
	applications appservices.ApplicationService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service services.UserService, applications appservices.ApplicationService) *UserHandler {
	return &UserHandler{service: service, applications: applications}
}

// CreateUser handles POST /users (admin only)
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return usererrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateUserRequest(&req); err != nil {
		return usererrors.HandleValidationError(c, err.Error())
	}

	user, token, err := h.service.CreateUser(c.Context(), &req)
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// ListUsers handles GET /users (admin only)
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles GET /users/:username
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	detail, err := h.service.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": detail})
}

// UpdateUser handles PATCH /users/:username
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := json.Unmarshal(c.Body(), &updates); err != nil {
		return usererrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateUserUpdates(updates); err != nil {
		return usererrors.HandleValidationError(c, err.Error())
	}

	user, err := h.service.UpdateUser(c.Context(), c.Params("username"), updates)
	if err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles DELETE /users/:username
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.service.DeleteUser(c.Context(), username); err != nil {
		return usererrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": username})
}

// ApplyToJob handles POST /users/:username/jobs/:id
func (h *UserHandler) ApplyToJob(c *fiber.Ctx) error {
	username := c.Params("username")
	jobID := queryvalidate.IntParamValue(c, "id")

	if err := h.applications.Apply(c.Context(), username, jobID); err != nil {
		return apperrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"applied": jobID})
}

package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	"github.com/gojobly/jobly/technologies/models"
	"github.com/gojobly/jobly/technologies/services"

	techerrors "github.com/gojobly/jobly/technologies/errors"
)

// TechnologyHandler handles technology HTTP endpoints
type TechnologyHandler struct {
	service services.TechnologyService
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(service services.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{service: service}
}

// CreateTechnology handles POST /technologies
func (h *TechnologyHandler) CreateTechnology(c *fiber.Ctx) error {
	var req models.CreateTechnologyRequest
	if err := c.BodyParser(&req); err != nil {
		return techerrors.HandleValidationError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return techerrors.HandleValidationError(c, "name is required")
	}

	tech, err := h.service.CreateTechnology(c.Context(), req.Name)
	if err != nil {
		return techerrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"technology": tech})
}

// ListTechnologies handles GET /technologies
func (h *TechnologyHandler) ListTechnologies(c *fiber.Ctx) error {
	technologies, err := h.service.ListTechnologies(c.Context())
	if err != nil {
		return techerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"technologies": technologies})
}

// AttachToUser handles POST /users/:username/technologies/:id
func (h *TechnologyHandler) AttachToUser(c *fiber.Ctx) error {
	username := c.Params("username")
	technologyID := queryvalidate.IntParamValue(c, "id")

	if err := h.service.AttachToUser(c.Context(), username, technologyID); err != nil {
		return techerrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"attached": technologyID})
}

// AttachToJob handles POST /jobs/:id/technologies/:techId
func (h *TechnologyHandler) AttachToJob(c *fiber.Ctx) error {
	jobID := queryvalidate.IntParamValue(c, "id")
	technologyID := queryvalidate.IntParamValue(c, "techId")

	if err := h.service.AttachToJob(c.Context(), jobID, technologyID); err != nil {
		return techerrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"attached": technologyID})
}

// MatchingJobs handles GET /users/:username/jobs/matching
func (h *TechnologyHandler) MatchingJobs(c *fiber.Ctx) error {
	jobs, err := h.service.MatchingJobs(c.Context(), c.Params("username"))
	if err != nil {
		return techerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

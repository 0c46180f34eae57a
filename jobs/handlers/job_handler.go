package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	joberrors "github.com/gojobly/jobly/jobs/errors"
	"github.com/gojobly/jobly/jobs/models"
	"github.com/gojobly/jobly/jobs/services"
	"github.com/gojobly/jobly/jobs/validation"
)

// JobHandler handles job HTTP endpoints
type JobHandler struct {
	service services.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(service services.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return joberrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateJobRequest(&req); err != nil {
		return joberrors.HandleValidationError(c, err.Error())
	}

	job, err := h.service.CreateJob(c.Context(), &req)
	if err != nil {
		return joberrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"job": job})
}

// ListJobs handles GET /jobs
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	filter := queryvalidate.JobFilterValue(c)
	if err := validation.ValidateJobFilter(filter); err != nil {
		return joberrors.HandleValidationError(c, err.Error())
	}

	jobs, err := h.service.ListJobs(c.Context(), filter)
	if err != nil {
		return joberrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id := queryvalidate.IntParamValue(c, "id")

	job, err := h.service.GetJob(c.Context(), id)
	if err != nil {
		return joberrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// UpdateJob handles PATCH /jobs/:id
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id := queryvalidate.IntParamValue(c, "id")

	var updates map[string]interface{}
	if err := json.Unmarshal(c.Body(), &updates); err != nil {
		return joberrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateJobUpdates(updates); err != nil {
		return joberrors.HandleValidationError(c, err.Error())
	}

	job, err := h.service.UpdateJob(c.Context(), id, updates)
	if err != nil {
		return joberrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id := queryvalidate.IntParamValue(c, "id")

	if err := h.service.DeleteJob(c.Context(), id); err != nil {
		return joberrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

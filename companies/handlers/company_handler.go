package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	companyerrors "github.com/gojobly/jobly/companies/errors"
	"github.com/gojobly/jobly/companies/models"
	"github.com/gojobly/jobly/companies/services"
	"github.com/gojobly/jobly/companies/validation"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
)

// CompanyHandler handles company HTTP endpoints
type CompanyHandler struct {
	service services.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service services.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return companyerrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCreateCompanyRequest(&req); err != nil {
		return companyerrors.HandleValidationError(c, err.Error())
	}

	company, err := h.service.CreateCompany(c.Context(), &req)
	if err != nil {
		return companyerrors.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": company})
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	filter := queryvalidate.CompanyFilterValue(c)
	if err := validation.ValidateCompanyFilter(filter); err != nil {
		return companyerrors.HandleValidationError(c, err.Error())
	}

	companies, err := h.service.ListCompanies(c.Context(), filter)
	if err != nil {
		return companyerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// GetCompany handles GET /companies/:handle
func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	detail, err := h.service.GetCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return companyerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": detail})
}

// UpdateCompany handles PATCH /companies/:handle
func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := json.Unmarshal(c.Body(), &updates); err != nil {
		return companyerrors.HandleInvalidRequestError(c, "Invalid request body")
	}

	if err := validation.ValidateCompanyUpdates(updates); err != nil {
		return companyerrors.HandleValidationError(c, err.Error())
	}

	company, err := h.service.UpdateCompany(c.Context(), c.Params("handle"), updates)
	if err != nil {
		return companyerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// DeleteCompany handles DELETE /companies/:handle
func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.service.DeleteCompany(c.Context(), handle); err != nil {
		return companyerrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": handle})
}

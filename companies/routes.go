package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/companies/handlers"
	"github.com/gojobly/jobly/internal/middleware/authjwt"
	"github.com/gojobly/jobly/internal/middleware/authrole"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	platformconfig "github.com/gojobly/jobly/internal/platform/config"
)

// CompaniesHandlers holds all the handlers this router needs.
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up company routes.
// Reads are open; writes require an authenticated admin.
func RegisterRoutes(app *fiber.App, h *CompaniesHandlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/companies")

	group.Get("/", queryvalidate.CompanyFilter(), h.CompanyHandler.ListCompanies)
	group.Get("/:handle", h.CompanyHandler.GetCompany)

	group.Post("/", requireAuth, authrole.RequireAdmin(), h.CompanyHandler.CreateCompany)
	group.Patch("/:handle", requireAuth, authrole.RequireAdmin(), h.CompanyHandler.UpdateCompany)
	group.Delete("/:handle", requireAuth, authrole.RequireAdmin(), h.CompanyHandler.DeleteCompany)
}

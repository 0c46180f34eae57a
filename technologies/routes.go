package technologies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/middleware/authjwt"
	"github.com/gojobly/jobly/internal/middleware/authrole"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	platformconfig "github.com/gojobly/jobly/internal/platform/config"
	"github.com/gojobly/jobly/technologies/handlers"
)

// TechnologiesHandlers holds all the handlers this router needs.
type TechnologiesHandlers struct {
	TechnologyHandler *handlers.TechnologyHandler
}

// RegisterRoutes is the single entry point for setting up technology routes.
// It also owns the user- and job-scoped attachment routes.
func RegisterRoutes(app *fiber.App, h *TechnologiesHandlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/technologies")
	group.Get("/", h.TechnologyHandler.ListTechnologies)
	group.Post("/", requireAuth, authrole.RequireAdmin(), h.TechnologyHandler.CreateTechnology)

	app.Post("/jobs/:id/technologies/:techId",
		requireAuth, authrole.RequireAdmin(),
		queryvalidate.IntParam("id"), queryvalidate.IntParam("techId"),
		h.TechnologyHandler.AttachToJob)

	app.Post("/users/:username/technologies/:id",
		requireAuth, authrole.RequireSelfOrAdmin("username"), queryvalidate.IntParam("id"),
		h.TechnologyHandler.AttachToUser)

	// Registered before the apply route's :jobId so "matching" is never
	// captured as an id.
	app.Get("/users/:username/jobs/matching",
		requireAuth, authrole.RequireSelfOrAdmin("username"),
		h.TechnologyHandler.MatchingJobs)
}

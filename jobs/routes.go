package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/middleware/authjwt"
	"github.com/gojobly/jobly/internal/middleware/authrole"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	platformconfig "github.com/gojobly/jobly/internal/platform/config"
	"github.com/gojobly/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs.
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up job routes.
// Reads are open; writes require an authenticated admin.
func RegisterRoutes(app *fiber.App, h *JobsHandlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	group := app.Group("/jobs")

	group.Get("/", queryvalidate.JobFilter(), h.JobHandler.ListJobs)
	group.Get("/:id", queryvalidate.IntParam("id"), h.JobHandler.GetJob)

	group.Post("/", requireAuth, authrole.RequireAdmin(), h.JobHandler.CreateJob)
	group.Patch("/:id", requireAuth, authrole.RequireAdmin(), queryvalidate.IntParam("id"), h.JobHandler.UpdateJob)
	group.Delete("/:id", requireAuth, authrole.RequireAdmin(), queryvalidate.IntParam("id"), h.JobHandler.DeleteJob)
}

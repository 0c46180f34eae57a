package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/middleware/authjwt"
	"github.com/gojobly/jobly/internal/middleware/authrole"
	"github.com/gojobly/jobly/internal/middleware/queryvalidate"
	platformconfig "github.com/gojobly/jobly/internal/platform/config"
	"github.com/gojobly/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up auth and user
// routes. Collection operations are admin only; account operations are
// self-or-admin.
func RegisterRoutes(app *fiber.App, h *UsersHandlers, cfg *platformconfig.Config) {
	requireAuth := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})

	auth := app.Group("/auth")
	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/token", h.AuthHandler.Token)

	group := app.Group("/users", requireAuth)

	group.Post("/", authrole.RequireAdmin(), h.UserHandler.CreateUser)
	group.Get("/", authrole.RequireAdmin(), h.UserHandler.ListUsers)

	group.Get("/:username", authrole.RequireSelfOrAdmin("username"), h.UserHandler.GetUser)
	group.Patch("/:username", authrole.RequireSelfOrAdmin("username"), h.UserHandler.UpdateUser)
	group.Delete("/:username", authrole.RequireSelfOrAdmin("username"), h.UserHandler.DeleteUser)

	group.Post("/:username/jobs/:id",
		authrole.RequireSelfOrAdmin("username"), queryvalidate.IntParam("id"),
		h.UserHandler.ApplyToJob)
}

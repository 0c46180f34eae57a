package authrole

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/types"
)

// RequireAdmin rejects requests whose authenticated user is not an admin.
// Must run after the authjwt middleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return unauthorized(c)
		}
		if !uc.IsAdmin {
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin rejects requests unless the authenticated user is an
// admin or matches the named path parameter. Must run after authjwt.
func RequireSelfOrAdmin(usernameParam string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return unauthorized(c)
		}
		if uc.IsAdmin || uc.Username == c.Params(usernameParam) {
			return c.Next()
		}
		return forbidden(c)
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    "UNAUTHORIZED",
		"message": "Authentication required",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"code":    "PERMISSION_DENIED",
		"message": "Insufficient permissions",
	})
}

package authjwt

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/gojobly/jobly/internal/auth/tokens"
	"github.com/gojobly/jobly/internal/types"
)

const testSecret = "middleware-test-secret"

func newApp(cfg Config, captured *types.UserContext) *fiber.App {
	app := fiber.New()
	app.Get("/protected", New(cfg), func(c *fiber.Ctx) error {
		if uc, ok := c.Locals(types.UserCtxName).(types.UserContext); ok {
			*captured = uc
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token attaches the user context", func(t *testing.T) {
		var uc types.UserContext
		app := newApp(Config{Secret: testSecret}, &uc)
		token, err := tokens.CreateToken("admin", true, testSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)
		res, err := app.Test(req)

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Equal(t, "admin", uc.Username)
		require.True(t, uc.IsAdmin)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		var uc types.UserContext
		app := newApp(Config{Secret: testSecret}, &uc)

		res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		var uc types.UserContext
		app := newApp(Config{Secret: testSecret}, &uc)
		token, err := tokens.CreateToken("user", false, "other-secret", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+token)
		res, err := app.Test(req)

		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("optional mode lets anonymous requests through", func(t *testing.T) {
		var uc types.UserContext
		app := newApp(Config{Secret: testSecret, Optional: true}, &uc)

		res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))

		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		require.Empty(t, uc.Username)
	})

	t.Run("optional mode still rejects garbage tokens", func(t *testing.T) {
		var uc types.UserContext
		app := newApp(Config{Secret: testSecret, Optional: true}, &uc)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+"not.a.token")
		res, err := app.Test(req)

		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})
}

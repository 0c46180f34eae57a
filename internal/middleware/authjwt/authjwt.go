package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gojobly/jobly/internal/auth/tokens"
	"github.com/gojobly/jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// Secret is the HS256 signing secret shared with the token issuer.
	Secret string
	// UserCtxName is the context key to store the UserContext under.
	// Defaults to types.UserCtxName.
	UserCtxName string
	// Optional indicates the request may proceed without a token; when a
	// valid token is present the UserContext is still attached. Invalid
	// tokens are rejected either way.
	Optional bool
}

// New creates a middleware that validates a bearer token and stores the
// resulting UserContext in fiber Locals.
func New(cfg Config) fiber.Handler {
	ctxName := cfg.UserCtxName
	if ctxName == "" {
		ctxName = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := extractBearerToken(c)

		if tokenString == "" {
			if cfg.Optional {
				return c.Next()
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}

		userCtx, err := ValidateToken(tokenString, cfg.Secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
				"details": err.Error(),
			})
		}

		c.Locals(ctxName, userCtx)
		return c.Next()
	}
}

// ValidateToken validates a JWT and returns the UserContext if valid.
// This is a pure validation function that does not write to the response,
// so other middleware can reuse it without side effects.
func ValidateToken(tokenString string, secret string) (types.UserContext, error) {
	var userCtx types.UserContext

	claims, err := tokens.ParseToken(tokenString, secret)
	if err != nil {
		return userCtx, err
	}

	userCtx.Username = claims.Username
	userCtx.IsAdmin = claims.IsAdmin
	return userCtx, nil
}

func extractBearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(types.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, types.BearerPrefix) {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

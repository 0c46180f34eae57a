package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Application service specific errors
var (
	ErrAlreadyApplied = errors.New("application already exists")
	ErrJobNotFound    = errors.New("job not found")
	ErrUserNotFound   = errors.New("user not found")
)

// Error codes
const (
	CodeDuplicateKey  = "DUPLICATE_KEY"
	CodeJobNotFound   = "JOB_NOT_FOUND"
	CodeUserNotFound  = "USER_NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors to HTTP responses.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrAlreadyApplied):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateKey,
			Message: "Already applied to this job",
			Details: err.Error(),
		})
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// WrapDatabaseError annotates a database failure without losing the cause.
func WrapDatabaseError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

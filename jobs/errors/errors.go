package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Job service specific errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrCompanyNotFound = errors.New("company not found for job")
	ErrInvalidJobData  = errors.New("invalid job data")
)

// Error codes
const (
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCompanyNotFound,
			Message: "Company not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidJobData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid request",
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

// HandleValidationError responds with 400 Bad Request.
func HandleValidationError(c *fiber.Ctx, message string, details ...string) error {
	response := ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	}
	if len(details) > 0 {
		response.Details = details[0]
	}
	return c.Status(http.StatusBadRequest).JSON(response)
}

// HandleInvalidRequestError responds with 400 Bad Request for unreadable bodies.
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	})
}

// WrapDatabaseError annotates a database failure without losing the cause.
func WrapDatabaseError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

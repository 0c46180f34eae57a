package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Technology service specific errors
var (
	ErrTechnologyNotFound      = errors.New("technology not found")
	ErrTechnologyAlreadyExists = errors.New("technology already exists")
	ErrAlreadyAttached         = errors.New("technology already attached")
)

// Error codes
const (
	CodeTechnologyNotFound = "TECHNOLOGY_NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrTechnologyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeTechnologyNotFound,
			Message: "Technology not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrTechnologyAlreadyExists), errors.Is(err, ErrAlreadyAttached):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateKey,
			Message: "Duplicate technology",
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
func HandleValidationError(c *fiber.Ctx, message string) error {
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

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// User service specific errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrInvalidUserData    = errors.New("invalid user data")
)

// Error codes
const (
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
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
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserAlreadyExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateKey,
			Message: "User already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		// Same body for bad username and bad password.
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username or password",
		})
	case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrInvalidUserData):
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

package services

import (
	"context"
	"time"

	"github.com/gojobly/jobly/users/models"
)

// UserService defines the interface for user and authentication operations
type UserService interface {
	// Auth operations
	Register(ctx context.Context, req *models.RegisterRequest) (string, error)
	Authenticate(ctx context.Context, req *models.LoginRequest) (string, error)

	// Admin operations
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Account operations
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, username string, updates map[string]interface{}) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// ApplicationLister provides the job ids a user applied to. Implemented by
// the applications service.
type ApplicationLister interface {
	ListJobIDs(ctx context.Context, username string) ([]int64, error)
}

// ServiceConfig carries the knobs the user service needs from platform
// configuration.
type ServiceConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	MinPasswordScore int
}

package repository

import (
	"context"

	"github.com/gojobly/jobly/users/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	GetCredentials(ctx context.Context, username string) (*models.Credentials, error)
	Update(ctx context.Context, username string, updates map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

package repository

import (
	"context"

	"github.com/gojobly/jobly/jobs/models"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	FindAll(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	FindByID(ctx context.Context, id int64) (*models.Job, error)
	FindByCompany(ctx context.Context, handle string) ([]models.Job, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
}

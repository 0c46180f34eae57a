package services

import (
	"context"

	"github.com/gojobly/jobly/jobs/models"
)

// JobService defines the interface for job operations
type JobService interface {
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListByCompany(ctx context.Context, handle string) ([]models.Job, error)
	UpdateJob(ctx context.Context, id int64, updates map[string]interface{}) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}

package services

import (
	"context"

	"github.com/gojobly/jobly/jobs/models"
	"github.com/gojobly/jobly/jobs/repository"
)

// jobService implements JobService on top of the repository. Its
// ListByCompany method also satisfies the companies package's JobLister.
type jobService struct {
	repo repository.JobRepository
}

// NewJobService creates a new job service
func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

// CreateJob stores a new job posting.
func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}
	return s.repo.Create(ctx, job)
}

// ListJobs returns jobs matching the filter.
func (s *jobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	return s.repo.FindAll(ctx, filter)
}

// GetJob returns a single job.
func (s *jobService) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByCompany returns the jobs posted by one company.
func (s *jobService) ListByCompany(ctx context.Context, handle string) ([]models.Job, error) {
	return s.repo.FindByCompany(ctx, handle)
}

// UpdateJob applies a partial update.
func (s *jobService) UpdateJob(ctx context.Context, id int64, updates map[string]interface{}) (*models.Job, error) {
	return s.repo.Update(ctx, id, updates)
}

// DeleteJob removes a job posting.
func (s *jobService) DeleteJob(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

package services

import (
	"context"

	"github.com/gojobly/jobly/applications/repository"
)

// ApplicationService defines the interface for job application operations
type ApplicationService interface {
	Apply(ctx context.Context, username string, jobID int64) error
	ListJobIDs(ctx context.Context, username string) ([]int64, error)
}

// applicationService implements ApplicationService. Its ListJobIDs also
// satisfies the users package's ApplicationLister.
type applicationService struct {
	repo repository.ApplicationRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

// Apply records that a user applied to a job.
func (s *applicationService) Apply(ctx context.Context, username string, jobID int64) error {
	return s.repo.Insert(ctx, username, jobID)
}

// ListJobIDs returns the ids of jobs the user applied to.
func (s *applicationService) ListJobIDs(ctx context.Context, username string) ([]int64, error) {
	return s.repo.ListJobIDs(ctx, username)
}

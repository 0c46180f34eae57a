package services

import (
	"context"

	jobmodels "github.com/gojobly/jobly/jobs/models"
	"github.com/gojobly/jobly/technologies/models"
	"github.com/gojobly/jobly/technologies/repository"
)

// TechnologyService defines the interface for technology operations
type TechnologyService interface {
	CreateTechnology(ctx context.Context, name string) (*models.Technology, error)
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
	AttachToUser(ctx context.Context, username string, technologyID int64) error
	AttachToJob(ctx context.Context, jobID, technologyID int64) error
	MatchingJobs(ctx context.Context, username string) ([]jobmodels.Job, error)
}

// technologyService implements TechnologyService on top of the repository.
type technologyService struct {
	repo repository.TechnologyRepository
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(repo repository.TechnologyRepository) TechnologyService {
	return &technologyService{repo: repo}
}

func (s *technologyService) CreateTechnology(ctx context.Context, name string) (*models.Technology, error) {
	return s.repo.Create(ctx, name)
}

func (s *technologyService) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	return s.repo.List(ctx)
}

func (s *technologyService) AttachToUser(ctx context.Context, username string, technologyID int64) error {
	return s.repo.AddToUser(ctx, username, technologyID)
}

func (s *technologyService) AttachToJob(ctx context.Context, jobID, technologyID int64) error {
	return s.repo.AddToJob(ctx, jobID, technologyID)
}

func (s *technologyService) MatchingJobs(ctx context.Context, username string) ([]jobmodels.Job, error) {
	return s.repo.MatchingJobs(ctx, username)
}

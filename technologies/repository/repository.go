package repository

import (
	"context"

	jobmodels "github.com/gojobly/jobly/jobs/models"
	"github.com/gojobly/jobly/technologies/models"
)

// TechnologyRepository defines persistence operations for technologies and
// their attachments.
type TechnologyRepository interface {
	Create(ctx context.Context, name string) (*models.Technology, error)
	List(ctx context.Context) ([]models.Technology, error)
	AddToUser(ctx context.Context, username string, technologyID int64) error
	AddToJob(ctx context.Context, jobID, technologyID int64) error
	MatchingJobs(ctx context.Context, username string) ([]jobmodels.Job, error)
}

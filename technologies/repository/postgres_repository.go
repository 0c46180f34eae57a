package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gojobly/jobly/internal/database/postgres"
	jobmodels "github.com/gojobly/jobly/jobs/models"
	techerrors "github.com/gojobly/jobly/technologies/errors"
	"github.com/gojobly/jobly/technologies/models"
)

// postgresRepository implements TechnologyRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for technologies
func NewPostgresRepository(client *postgres.Client) TechnologyRepository {
	return &postgresRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new technology.
func (r *postgresRepository) Create(ctx context.Context, name string) (*models.Technology, error) {
	query := `INSERT INTO technologies (name) VALUES ($1) RETURNING id, name`

	var created models.Technology
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &created, query, name)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("%w: %s", techerrors.ErrTechnologyAlreadyExists, name)
		}
		return nil, techerrors.WrapDatabaseError("create technology", err)
	}
	return &created, nil
}

// List returns all technologies ordered by name.
func (r *postgresRepository) List(ctx context.Context) ([]models.Technology, error) {
	query := `SELECT id, name FROM technologies ORDER BY name`

	technologies := []models.Technology{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &technologies, query); err != nil {
		return nil, techerrors.WrapDatabaseError("list technologies", err)
	}
	return technologies, nil
}

// AddToUser attaches a technology to a user's skill set.
func (r *postgresRepository) AddToUser(ctx context.Context, username string, technologyID int64) error {
	query := `INSERT INTO user_technologies (username, technology_id) VALUES ($1, $2)`

	if _, err := r.getExecutor(ctx).ExecContext(ctx, query, username, technologyID); err != nil {
		return r.translateAttachError(err, technologyID)
	}
	return nil
}

// AddToJob attaches a technology to a job's requirements.
func (r *postgresRepository) AddToJob(ctx context.Context, jobID, technologyID int64) error {
	query := `INSERT INTO job_technologies (job_id, technology_id) VALUES ($1, $2)`

	if _, err := r.getExecutor(ctx).ExecContext(ctx, query, jobID, technologyID); err != nil {
		return r.translateAttachError(err, technologyID)
	}
	return nil
}

// MatchingJobs returns jobs requiring at least one of the user's
// technologies. The user's skill ids are fetched first, then matched in one
// set query.
func (r *postgresRepository) MatchingJobs(ctx context.Context, username string) ([]jobmodels.Job, error) {
	executor := r.getExecutor(ctx)

	techIDs := []int64{}
	skillQuery := `SELECT technology_id FROM user_technologies WHERE username = $1`
	if err := sqlx.SelectContext(ctx, executor, &techIDs, skillQuery, username); err != nil {
		return nil, techerrors.WrapDatabaseError("list user technologies", err)
	}
	if len(techIDs) == 0 {
		return []jobmodels.Job{}, nil
	}

	query := `
		SELECT DISTINCT j.id, j.title, j.salary, j.equity, j.company_handle
		FROM jobs j
		JOIN job_technologies jt ON jt.job_id = j.id
		WHERE jt.technology_id = ANY($1)
		ORDER BY j.id DESC`

	jobs := []jobmodels.Job{}
	if err := sqlx.SelectContext(ctx, executor, &jobs, query, pq.Array(techIDs)); err != nil {
		return nil, techerrors.WrapDatabaseError("match jobs", err)
	}
	return jobs, nil
}

func (r *postgresRepository) translateAttachError(err error, technologyID int64) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key"):
		return fmt.Errorf("%w: %d", techerrors.ErrAlreadyAttached, technologyID)
	case strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %d", techerrors.ErrTechnologyNotFound, technologyID)
	}
	return techerrors.WrapDatabaseError("attach technology", err)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gojobly/jobly/internal/database/postgres"
	"github.com/gojobly/jobly/internal/database/sqlbuilder"
	joberrors "github.com/gojobly/jobly/jobs/errors"
	"github.com/gojobly/jobly/jobs/models"
)

// Maps request field names to column names for PATCH updates.
var jobColumnFor = map[string]string{
	"companyHandle": "company_handle",
}

const jobColumns = `id, title, salary, equity, company_handle`

// postgresRepository implements JobRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs
func NewPostgresRepository(client *postgres.Client) JobRepository {
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

// Create inserts a new job and returns the stored row with its generated id.
func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &created, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle)
	if err != nil {
		// A bad company_handle trips the foreign key.
		if strings.Contains(err.Error(), "foreign key") {
			return nil, fmt.Errorf("%w: %s", joberrors.ErrCompanyNotFound, job.CompanyHandle)
		}
		return nil, joberrors.WrapDatabaseError("create job", err)
	}
	return &created, nil
}

// FindAll lists jobs matching the filter, newest first.
func (r *postgresRepository) FindAll(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	where, values := BuildWhereClause(filter)

	query := `SELECT ` + jobColumns + ` FROM jobs` + where + ` ORDER BY id DESC`

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, values...); err != nil {
		return nil, joberrors.WrapDatabaseError("list jobs", err)
	}
	return jobs, nil
}

// FindByID retrieves a single job.
func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", joberrors.ErrJobNotFound, id)
		}
		return nil, joberrors.WrapDatabaseError("find job", err)
	}
	return &job, nil
}

// FindByCompany lists the jobs posted by one company.
func (r *postgresRepository) FindByCompany(ctx context.Context, handle string) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_handle = $1 ORDER BY id DESC`

	jobs := []models.Job{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, handle); err != nil {
		return nil, joberrors.WrapDatabaseError("list company jobs", err)
	}
	return jobs, nil
}

// Update applies a partial update built from the request fields and returns
// the updated row.
func (r *postgresRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Job, error) {
	set, err := sqlbuilder.BuildSetClause(updates, jobColumnFor)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		set.Columns, len(set.Values)+1, jobColumns)
	args := append(set.Values, id)

	var updated models.Job
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", joberrors.ErrJobNotFound, id)
		}
		return nil, joberrors.WrapDatabaseError("update job", err)
	}
	return &updated, nil
}

// Delete removes a job.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1 RETURNING id`

	var deleted int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %d", joberrors.ErrJobNotFound, id)
		}
		return joberrors.WrapDatabaseError("delete job", err)
	}
	return nil
}

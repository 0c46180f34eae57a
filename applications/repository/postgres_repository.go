package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/gojobly/jobly/applications/errors"
	"github.com/gojobly/jobly/internal/database/postgres"
)

// postgresRepository implements ApplicationRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for applications
func NewPostgresRepository(client *postgres.Client) ApplicationRepository {
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

// Insert records an application. The composite primary key and the two
// foreign keys do the heavy lifting; their violations are translated to
// domain errors by constraint name.
func (r *postgresRepository) Insert(ctx context.Context, username string, jobID int64) error {
	query := `INSERT INTO applications (username, job_id) VALUES ($1, $2)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, username, jobID)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "duplicate key"):
			return fmt.Errorf("%w: %s -> %d", apperrors.ErrAlreadyApplied, username, jobID)
		case strings.Contains(msg, "applications_job_id_fkey"):
			return fmt.Errorf("%w: %d", apperrors.ErrJobNotFound, jobID)
		case strings.Contains(msg, "applications_username_fkey"):
			return fmt.Errorf("%w: %s", apperrors.ErrUserNotFound, username)
		}
		return apperrors.WrapDatabaseError("insert application", err)
	}
	return nil
}

// ListJobIDs returns the ids of jobs the user applied to, oldest first.
func (r *postgresRepository) ListJobIDs(ctx context.Context, username string) ([]int64, error) {
	query := `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`

	jobIDs := []int64{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobIDs, query, username); err != nil {
		return nil, apperrors.WrapDatabaseError("list applications", err)
	}
	return jobIDs, nil
}

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
	usererrors "github.com/gojobly/jobly/users/errors"
	"github.com/gojobly/jobly/users/models"
)

// Maps request field names to column names for PATCH updates. Password
// changes arrive pre-hashed from the service under "password".
var userColumnFor = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
	"password":  "password_hash",
}

const userColumns = `username, first_name, last_name, email, is_admin`

// postgresRepository implements UserRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for users
func NewPostgresRepository(client *postgres.Client) UserRepository {
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

// Create inserts a new user with an already-hashed password.
func (r *postgresRepository) Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &created, query,
		user.Username, passwordHash, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("%w: %s", usererrors.ErrUserAlreadyExists, user.Username)
		}
		return nil, usererrors.WrapDatabaseError("create user", err)
	}
	return &created, nil
}

// FindAll lists all users ordered by username.
func (r *postgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	users := []models.User{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &users, query); err != nil {
		return nil, usererrors.WrapDatabaseError("list users", err)
	}
	return users, nil
}

// FindByUsername retrieves a single user without credentials.
func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", usererrors.ErrUserNotFound, username)
		}
		return nil, usererrors.WrapDatabaseError("find user", err)
	}
	return &user, nil
}

// GetCredentials fetches the stored hash for authentication. A missing user
// surfaces as invalid credentials so login never reveals which part failed.
func (r *postgresRepository) GetCredentials(ctx context.Context, username string) (*models.Credentials, error) {
	query := `SELECT username, password_hash, is_admin FROM users WHERE username = $1`

	var creds models.Credentials
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &creds, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usererrors.ErrInvalidCredentials
		}
		return nil, usererrors.WrapDatabaseError("get credentials", err)
	}
	return &creds, nil
}

// Update applies a partial update built from the request fields and returns
// the updated row.
func (r *postgresRepository) Update(ctx context.Context, username string, updates map[string]interface{}) (*models.User, error) {
	set, err := sqlbuilder.BuildSetClause(updates, userColumnFor)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		set.Columns, len(set.Values)+1, userColumns)
	args := append(set.Values, username)

	var updated models.User
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", usererrors.ErrUserNotFound, username)
		}
		return nil, usererrors.WrapDatabaseError("update user", err)
	}
	return &updated, nil
}

// Delete removes a user. Applications are removed by ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1 RETURNING username`

	var deleted string
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", usererrors.ErrUserNotFound, username)
		}
		return usererrors.WrapDatabaseError("delete user", err)
	}
	return nil
}

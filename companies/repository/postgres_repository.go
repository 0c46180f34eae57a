package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	companyerrors "github.com/gojobly/jobly/companies/errors"
	"github.com/gojobly/jobly/companies/models"
	"github.com/gojobly/jobly/internal/database/postgres"
	"github.com/gojobly/jobly/internal/database/sqlbuilder"
)

// Maps request field names to column names for PATCH updates.
var companyColumnFor = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const companyColumns = `handle, name, description, num_employees, logo_url`

// postgresRepository implements CompanyRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) CompanyRepository {
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

// Create inserts a new company and returns the stored row.
func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created models.Company
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &created, query,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, fmt.Errorf("%w: %s", companyerrors.ErrCompanyAlreadyExists, company.Handle)
		}
		return nil, companyerrors.WrapDatabaseError("create company", err)
	}
	return &created, nil
}

// FindAll lists companies matching the filter, ordered by name.
func (r *postgresRepository) FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	where, values, err := BuildWhereClause(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", companyerrors.ErrBadFilter, err)
	}

	query := `SELECT ` + companyColumns + ` FROM companies` + where + ` ORDER BY name`

	companies := []models.Company{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &companies, query, values...); err != nil {
		return nil, companyerrors.WrapDatabaseError("list companies", err)
	}
	return companies, nil
}

// FindByHandle retrieves a single company.
func (r *postgresRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle = $1`

	var company models.Company
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyerrors.ErrCompanyNotFound, handle)
		}
		return nil, companyerrors.WrapDatabaseError("find company", err)
	}
	return &company, nil
}

// Update applies a partial update built from the request fields and returns
// the updated row. Field names are translated to columns via companyColumnFor.
func (r *postgresRepository) Update(ctx context.Context, handle string, updates map[string]interface{}) (*models.Company, error) {
	set, err := sqlbuilder.BuildSetClause(updates, companyColumnFor)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		set.Columns, len(set.Values)+1, companyColumns)
	args := append(set.Values, handle)

	var updated models.Company
	err = sqlx.GetContext(ctx, r.getExecutor(ctx), &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyerrors.ErrCompanyNotFound, handle)
		}
		return nil, companyerrors.WrapDatabaseError("update company", err)
	}
	return &updated, nil
}

// Delete removes a company. Jobs referencing it are removed by the schema's
// ON DELETE CASCADE.
func (r *postgresRepository) Delete(ctx context.Context, handle string) error {
	query := `DELETE FROM companies WHERE handle = $1 RETURNING handle`

	var deleted string
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", companyerrors.ErrCompanyNotFound, handle)
		}
		return companyerrors.WrapDatabaseError("delete company", err)
	}
	return nil
}

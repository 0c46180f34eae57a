package repository

import (
	"context"

	"github.com/gojobly/jobly/companies/models"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)
	Update(ctx context.Context, handle string, updates map[string]interface{}) (*models.Company, error)
	Delete(ctx context.Context, handle string) error
}

package services

import (
	"context"

	"github.com/gojobly/jobly/companies/models"
	jobmodels "github.com/gojobly/jobly/jobs/models"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error)
	UpdateCompany(ctx context.Context, handle string, updates map[string]interface{}) (*models.Company, error)
	DeleteCompany(ctx context.Context, handle string) error
}

// JobLister provides the jobs shown on a company detail. Implemented by the
// jobs service so companies does not depend on its repository.
type JobLister interface {
	ListByCompany(ctx context.Context, handle string) ([]jobmodels.Job, error)
}

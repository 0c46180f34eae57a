package services

import (
	"context"

	"github.com/gojobly/jobly/companies/models"
	"github.com/gojobly/jobly/companies/repository"
)

// companyService implements CompanyService on top of the repository.
type companyService struct {
	repo repository.CompanyRepository
	jobs JobLister
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepository, jobs JobLister) CompanyService {
	return &companyService{repo: repo, jobs: jobs}
}

// CreateCompany stores a new company.
func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	return s.repo.Create(ctx, company)
}

// ListCompanies returns companies matching the filter.
func (s *companyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	return s.repo.FindAll(ctx, filter)
}

// GetCompany returns a company together with its jobs.
func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByCompany(ctx, handle)
	if err != nil {
		return nil, err
	}

	return &models.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

// UpdateCompany applies a partial update.
func (s *companyService) UpdateCompany(ctx context.Context, handle string, updates map[string]interface{}) (*models.Company, error) {
	return s.repo.Update(ctx, handle, updates)
}

// DeleteCompany removes a company and, via the schema, its jobs.
func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	return s.repo.Delete(ctx, handle)
}

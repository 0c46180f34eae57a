package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gojobly/jobly/companies/models"
	jobmodels "github.com/gojobly/jobly/jobs/models"
)

// MockCompanyRepository is a mock implementation of CompanyRepository for testing
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, handle string, updates map[string]interface{}) (*models.Company, error) {
	args := m.Called(ctx, handle, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

// MockJobLister is a mock implementation of JobLister for testing
type MockJobLister struct {
	mock.Mock
}

func (m *MockJobLister) ListByCompany(ctx context.Context, handle string) ([]jobmodels.Job, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]jobmodels.Job), args.Error(1)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	joberrors "github.com/gojobly/jobly/jobs/errors"
	"github.com/gojobly/jobly/jobs/models"
)

func TestCreateJob(t *testing.T) {
	t.Run("passes fields through to the repository", func(t *testing.T) {
		repo := new(MockJobRepository)
		svc := NewJobService(repo)
		salary := 90000
		equity := "0.05"
		req := &models.CreateJobRequest{
			Title:         "Engineer",
			Salary:        &salary,
			Equity:        &equity,
			CompanyHandle: "acme",
		}
		stored := &models.Job{ID: 1, Title: "Engineer", CompanyHandle: "acme"}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(j *models.Job) bool {
			return j.Title == "Engineer" && j.CompanyHandle == "acme" &&
				j.Salary != nil && *j.Salary == 90000 &&
				j.Equity != nil && *j.Equity == "0.05"
		})).Return(stored, nil)

		job, err := svc.CreateJob(context.Background(), req)

		require.NoError(t, err)
		require.Equal(t, int64(1), job.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown company surfaces as not found", func(t *testing.T) {
		repo := new(MockJobRepository)
		svc := NewJobService(repo)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(nil, joberrors.ErrCompanyNotFound)

		_, err := svc.CreateJob(context.Background(), &models.CreateJobRequest{
			Title:         "Engineer",
			CompanyHandle: "nope",
		})

		require.ErrorIs(t, err, joberrors.ErrCompanyNotFound)
	})
}

func TestListJobs(t *testing.T) {
	repo := new(MockJobRepository)
	svc := NewJobService(repo)
	hasEquity := true
	filter := models.JobFilter{Title: "eng", HasEquity: &hasEquity}
	repo.On("FindAll", mock.Anything, filter).
		Return([]models.Job{{ID: 2, Title: "Engineer"}}, nil)

	jobs, err := svc.ListJobs(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	repo.AssertExpectations(t)
}

func TestGetJob(t *testing.T) {
	repo := new(MockJobRepository)
	svc := NewJobService(repo)
	repo.On("FindByID", mock.Anything, int64(42)).
		Return(nil, joberrors.ErrJobNotFound)

	_, err := svc.GetJob(context.Background(), 42)

	require.ErrorIs(t, err, joberrors.ErrJobNotFound)
}

func TestListByCompany(t *testing.T) {
	repo := new(MockJobRepository)
	svc := NewJobService(repo)
	repo.On("FindByCompany", mock.Anything, "acme").
		Return([]models.Job{{ID: 1, CompanyHandle: "acme"}, {ID: 2, CompanyHandle: "acme"}}, nil)

	jobs, err := svc.ListByCompany(context.Background(), "acme")

	require.NoError(t, err)
	require.Len(t, jobs, 2)
}

func TestUpdateJob(t *testing.T) {
	repo := new(MockJobRepository)
	svc := NewJobService(repo)
	updates := map[string]interface{}{"title": "Staff Engineer"}
	repo.On("Update", mock.Anything, int64(7), updates).
		Return(&models.Job{ID: 7, Title: "Staff Engineer"}, nil)

	job, err := svc.UpdateJob(context.Background(), 7, updates)

	require.NoError(t, err)
	require.Equal(t, "Staff Engineer", job.Title)
}

func TestDeleteJob(t *testing.T) {
	repo := new(MockJobRepository)
	svc := NewJobService(repo)
	repo.On("Delete", mock.Anything, int64(9)).Return(nil)

	require.NoError(t, svc.DeleteJob(context.Background(), 9))
	repo.AssertExpectations(t)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gojobly/jobly/applications/errors"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository for testing
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Insert(ctx context.Context, username string, jobID int64) error {
	args := m.Called(ctx, username, jobID)
	return args.Error(0)
}

func (m *MockApplicationRepository) ListJobIDs(ctx context.Context, username string) ([]int64, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func TestApply(t *testing.T) {
	t.Run("records the application", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewApplicationService(repo)
		repo.On("Insert", mock.Anything, "user", int64(7)).Return(nil)

		require.NoError(t, svc.Apply(context.Background(), "user", 7))
		repo.AssertExpectations(t)
	})

	t.Run("double apply surfaces as a conflict", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewApplicationService(repo)
		repo.On("Insert", mock.Anything, "user", int64(7)).
			Return(apperrors.ErrAlreadyApplied)

		err := svc.Apply(context.Background(), "user", 7)

		require.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	})
}

func TestListJobIDs(t *testing.T) {
	repo := new(MockApplicationRepository)
	svc := NewApplicationService(repo)
	repo.On("ListJobIDs", mock.Anything, "user").Return([]int64{1, 4}, nil)

	jobIDs, err := svc.ListJobIDs(context.Background(), "user")

	require.NoError(t, err)
	require.Equal(t, []int64{1, 4}, jobIDs)
}

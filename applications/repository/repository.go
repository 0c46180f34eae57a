package repository

import "context"

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	Insert(ctx context.Context, username string, jobID int64) error
	ListJobIDs(ctx context.Context, username string) ([]int64, error)
}

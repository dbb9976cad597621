package usecase

import (
	"context"

	"hirechain/internal/repository"
)

type JobListUsecase interface {
	ListJobs(ctx context.Context, limit, offset int) ([]repository.Job, error)
}

type JobList struct {
	jobs repository.JobRepository
}

func NewJobListUsecase(jobs repository.JobRepository) *JobList {
	return &JobList{jobs: jobs}
}

func (u *JobList) ListJobs(ctx context.Context, limit, offset int) ([]repository.Job, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}

	items, err := u.jobs.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"hirechain/internal/repository"

	"github.com/google/uuid"
)

func TestListJobs_ReturnsRepositoryItems(t *testing.T) {
	want := []repository.Job{
		{ID: uuid.New(), Title: "Backend Engineer"},
		{ID: uuid.New(), Title: "Data Engineer"},
	}
	uc := NewJobListUsecase(&mockJobRepo{jobs: want})

	got, err := uc.ListJobs(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(got), len(want))
	}
	if got[0].Title != want[0].Title {
		t.Errorf("got first title %q, want %q", got[0].Title, want[0].Title)
	}
}

func TestListJobs_NegativePagination(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{})

	for _, tc := range []struct{ limit, offset int }{{-1, 0}, {0, -1}} {
		_, err := uc.ListJobs(context.Background(), tc.limit, tc.offset)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("limit=%d offset=%d: got %v, want ErrInvalidInput", tc.limit, tc.offset, err)
		}
	}
}

func TestListJobs_RepositoryFailure(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{listErr: errors.New("down")})

	_, err := uc.ListJobs(context.Background(), 10, 0)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("got %v, want ErrInternal", err)
	}
}

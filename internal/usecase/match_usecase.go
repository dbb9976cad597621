package usecase

import (
	"context"
	"sort"

	"hirechain/internal/domain/textmatch"
	"hirechain/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobMatch struct {
	JobID      uuid.UUID
	Title      string
	Company    string
	Location   string
	MatchScore float64
}

type MatchUsecase interface {
	MatchJobs(ctx context.Context, resumeText string) ([]JobMatch, error)
}

type Matching struct {
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewMatchingUsecase(jobs repository.JobRepository, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{jobs: jobs, logger: logger}
}

// MatchJobs scores the résumé against every stored job description and
// returns results sorted by descending score. The sort is stable: jobs with
// equal scores keep their stored order. An empty résumé degrades to
// all-zero scores rather than failing.
func (u *Matching) MatchJobs(ctx context.Context, resumeText string) ([]JobMatch, error) {
	records, err := u.jobs.ListForMatching(ctx)
	if err != nil {
		u.logger.Error("list jobs for matching", zap.Error(err))
		return nil, ErrInternal
	}

	resumeTokens := textmatch.Tokenize(resumeText)

	out := make([]JobMatch, 0, len(records))
	for _, rec := range records {
		jobTokens := textmatch.Tokenize(rec.Description)
		score := textmatch.Score(textmatch.Similarity(resumeTokens, jobTokens))
		out = append(out, JobMatch{
			JobID:      rec.ID,
			Title:      rec.Title,
			Company:    rec.Company,
			Location:   rec.Location,
			MatchScore: score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	return out, nil
}

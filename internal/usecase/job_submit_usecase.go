package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirechain/internal/infrastructure/ledger"
	"hirechain/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const submissionLockTTL = 30 * time.Second

type JobSubmission struct {
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         string
	Description  string
	Requirements string
	Skills       []string
	TxHash       string
}

type JobSubmitUsecase interface {
	SubmitJob(ctx context.Context, userID uuid.UUID, in JobSubmission) (repository.Job, error)
}

type PaymentVerifier interface {
	Verify(ctx context.Context, reference string, a ledger.Assertion) error
}

// SubmissionLock de-duplicates concurrent submissions for the same
// transaction reference while verify-then-persist is in flight.
type SubmissionLock interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string)
}

type JobSubmit struct {
	jobs     repository.JobRepository
	users    repository.UserRepository
	verifier PaymentVerifier
	lock     SubmissionLock

	adminWallet     string
	minimumLamports uint64

	logger  *zap.Logger
	observe func(result string)
}

func NewJobSubmitUsecase(
	jobs repository.JobRepository,
	users repository.UserRepository,
	verifier PaymentVerifier,
	lock SubmissionLock,
	adminWallet string,
	minimumLamports uint64,
	logger *zap.Logger,
	observe func(result string),
) *JobSubmit {
	if logger == nil {
		logger = zap.NewNop()
	}
	if observe == nil {
		observe = func(string) {}
	}
	return &JobSubmit{
		jobs:            jobs,
		users:           users,
		verifier:        verifier,
		lock:            lock,
		adminWallet:     adminWallet,
		minimumLamports: minimumLamports,
		logger:          logger,
		observe:         observe,
	}
}

// SubmitJob persists a job only after the ledger independently confirms the
// supplied transaction reference paid the platform wallet from the
// submitter's wallet. Field validation runs before any ledger call; a
// reference is accepted at most once.
func (u *JobSubmit) SubmitJob(ctx context.Context, userID uuid.UUID, in JobSubmission) (repository.Job, error) {
	if userID == uuid.Nil {
		return repository.Job{}, ErrUnauthorized
	}

	if missing := missingFields(in); len(missing) > 0 {
		u.observe("validation_error")
		return repository.Job{}, &ValidationError{Missing: missing}
	}

	wallet, err := u.users.GetWalletByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.Job{}, ErrUnauthorized
		}
		u.logger.Error("wallet lookup", zap.Error(err))
		return repository.Job{}, ErrInternal
	}
	if strings.TrimSpace(wallet) == "" {
		u.observe("validation_error")
		return repository.Job{}, &ValidationError{Missing: []string{"wallet"}}
	}

	used, err := u.jobs.ExistsByTxHash(ctx, in.TxHash)
	if err != nil {
		u.logger.Error("duplicate reference check", zap.Error(err))
		return repository.Job{}, ErrInternal
	}
	if used {
		u.observe("duplicate")
		return repository.Job{}, ErrDuplicateReference
	}

	lockKey := "jobs:tx:" + in.TxHash
	acquired, err := u.lock.AcquireLock(ctx, lockKey, submissionLockTTL)
	if err != nil {
		u.logger.Error("submission lock", zap.Error(err))
		return repository.Job{}, ErrInternal
	}
	if !acquired {
		u.observe("duplicate")
		return repository.Job{}, ErrDuplicateReference
	}
	defer u.lock.ReleaseLock(context.WithoutCancel(ctx), lockKey)

	err = u.verifier.Verify(ctx, in.TxHash, ledger.Assertion{
		ExpectedSource:      wallet,
		ExpectedDestination: u.adminWallet,
		MinimumLamports:     u.minimumLamports,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrLookupFailed):
			u.observe("ledger_unavailable")
			return repository.Job{}, ErrLedgerUnavailable
		case errors.Is(err, ledger.ErrPaymentRejected):
			u.observe("payment_rejected")
			u.logger.Info("payment rejected",
				zap.String("reference", in.TxHash),
				zap.String("user_id", userID.String()),
			)
			return repository.Job{}, ErrPaymentRejected
		default:
			u.logger.Error("payment verification", zap.Error(err))
			return repository.Job{}, ErrInternal
		}
	}

	job, err := u.jobs.Create(ctx, repository.JobCreate{
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Salary:       in.Salary,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: in.Requirements,
		Skills:       in.Skills,
		TxHash:       in.TxHash,
		PostedBy:     userID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTxHash) {
			u.observe("duplicate")
			return repository.Job{}, ErrDuplicateReference
		}
		u.logger.Error("persist job", zap.Error(err))
		return repository.Job{}, ErrInternal
	}

	u.observe("created")
	return job, nil
}

func missingFields(in JobSubmission) []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("title", in.Title)
	check("company", in.Company)
	check("location", in.Location)
	check("salary", in.Salary)
	check("type", in.Type)
	check("description", in.Description)
	check("requirements", in.Requirements)
	check("tx_hash", in.TxHash)
	return missing
}

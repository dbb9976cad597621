package repository

import (
	"context"
	"errors"
	"time"

	"hirechain/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateTxHash = errors.New("transaction reference already used")
)

type Job struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         string
	Description  string
	Requirements string
	Skills       []string
	TxHash       string
	PostedBy     uuid.UUID
	CreatedAt    time.Time
}

// JobDescription is the slice of a job the matcher reads.
type JobDescription struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
}

type JobCreate struct {
	Title        string
	Company      string
	Location     string
	Salary       string
	Type         string
	Description  string
	Requirements string
	Skills       []string
	TxHash       string
	PostedBy     uuid.UUID
}

type JobRepository interface {
	ListForMatching(ctx context.Context) ([]JobDescription, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Create(ctx context.Context, in JobCreate) (Job, error)
	ExistsByTxHash(ctx context.Context, txHash string) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListForMatching(ctx context.Context) ([]JobDescription, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''), COALESCE(description, '')
		 FROM jobs
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobDescription, 0)
	for rows.Next() {
		var j JobDescription
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, salary, type, description, requirements, skills, tx_hash, posted_by, created_at
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.Type,
			&j.Description, &j.Requirements, &j.Skills, &j.TxHash, &j.PostedBy, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, in JobCreate) (Job, error) {
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, salary, type, description, requirements, skills, tx_hash, posted_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		in.Title, in.Company, in.Location, in.Salary, in.Type,
		in.Description, in.Requirements, skills, in.TxHash, in.PostedBy,
	)

	job := Job{
		Title:        in.Title,
		Company:      in.Company,
		Location:     in.Location,
		Salary:       in.Salary,
		Type:         in.Type,
		Description:  in.Description,
		Requirements: in.Requirements,
		Skills:       skills,
		TxHash:       in.TxHash,
		PostedBy:     in.PostedBy,
	}
	if err := row.Scan(&job.ID, &job.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Job{}, ErrDuplicateTxHash
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PostgresJobRepository) ExistsByTxHash(ctx context.Context, txHash string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE tx_hash = $1)`, txHash)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

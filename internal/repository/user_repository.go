package repository

import (
	"context"
	"errors"

	"hirechain/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetWalletByID(ctx context.Context, userID uuid.UUID) (string, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetWalletByID(ctx context.Context, userID uuid.UUID) (string, error) {
	var wallet string
	row := r.db.QueryRow(ctx, `SELECT COALESCE(wallet, '') FROM users WHERE id = $1`, userID)
	if err := row.Scan(&wallet); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return wallet, nil
}

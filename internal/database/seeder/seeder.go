package seeder

import (
	"context"
	"fmt"

	"hirechain/internal/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Run executes all seeders in order, stopping at the first failure.
func Run(ctx context.Context, db database.DB, logger *zap.Logger, seeders ...Seeder) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range seeders {
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
		logger.Info("seeder applied", zap.String("name", s.Name()))
	}
	return nil
}

type demoUser struct {
	email  string
	name   string
	wallet string
}

// DemoUsers seeds employer accounts for local development. Each gets a
// fixed wallet so submitted payment references can be matched against a
// test validator. Idempotent on email.
type DemoUsers struct{}

func (DemoUsers) Name() string { return "demo_users" }

func (DemoUsers) Run(ctx context.Context, db database.DB) error {
	users := []demoUser{
		{"employer@hirechain.dev", "Demo Employer", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"},
		{"recruiter@hirechain.dev", "Demo Recruiter", "4Nd1mYvM6K7Zw3PqR8sTuV9xAaBbCcDdEeFfGgHhJjKk"},
	}

	for _, u := range users {
		_, err := db.Exec(ctx, `
			INSERT INTO users (id, email, name, wallet)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING
		`, uuid.New(), u.email, u.name, u.wallet)
		if err != nil {
			return err
		}
	}
	return nil
}

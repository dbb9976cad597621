package main

import (
	"context"
	"log"
	"time"

	"hirechain/internal/config"
	"hirechain/internal/database/migration"
	dbpostgres "hirechain/internal/database/postgres"
	"hirechain/internal/database/seeder"
	"hirechain/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seeder.Run(ctx, db, zl, seeder.DemoUsers{}); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
}

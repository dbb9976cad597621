package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hirechain/internal/config"
	"hirechain/internal/database/migration"
	dbpostgres "hirechain/internal/database/postgres"
	"hirechain/internal/delivery/http/middleware"
	"hirechain/internal/delivery/http/routes"
	"hirechain/internal/infrastructure/cache"
	"hirechain/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the full service: database, migrations, cache, HTTP
// routes. The returned cleanup releases every connection it opened.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	rdb := cache.NewRedis(cfg.Redis, logger)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)

	f.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	registry := routes.NewRegistry()
	if err := registry.Register(f, cfg, db, rdb, logger); err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("register routes: %w", err)
	}

	cleanup := func() error {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close", zap.Error(err))
		}
		return db.Close()
	}

	return &App{Fiber: f}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(metrics.Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package routes

import (
	"hirechain/internal/config"
	"hirechain/internal/database"
	"hirechain/internal/delivery/http/handler"
	"hirechain/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, rdb *cache.Redis, logger *zap.Logger) error {
	if app == nil {
		return nil
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	return RegisterV1(api.Group("/v1"), cfg, db, rdb, logger)
}

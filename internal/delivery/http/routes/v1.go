package routes

import (
	"hirechain/internal/config"
	"hirechain/internal/database"
	v1 "hirechain/internal/delivery/http/routes/v1"
	"hirechain/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, rdb *cache.Redis, logger *zap.Logger) error {
	if r == nil {
		return nil
	}

	return v1.Register(r, cfg, db, rdb, logger)
}

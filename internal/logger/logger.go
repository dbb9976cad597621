package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the given environment. production gets JSON
// output, everything else gets the console development encoder.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "production", "prod":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l, nil
}

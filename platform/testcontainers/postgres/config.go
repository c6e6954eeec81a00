package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/you-humble/motorcycle-registry/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Database  string
	Username  string
	Password  string
	SSLMode   string
	Logger    Logger
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: "postgres:17.0-alpine3.20",
		Database:  "test",
		Username:  "postgres",
		Password:  "postgres",
		SSLMode:   "disable",
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

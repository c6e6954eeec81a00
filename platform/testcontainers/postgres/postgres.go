package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	pgPort           = "5432/tcp"
	pgStartupTimeout = 1 * time.Minute
)

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := tcpostgres.Run(ctx,
		cfg.ImageName,
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		// postgres restarts once after running init scripts, so the first
		// readiness line is not enough
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(pgStartupTimeout),
			wait.ForListeningPort(pgPort).WithStartupTimeout(pgStartupTimeout),
		),
	)
	if err != nil {
		return nil, errors.Errorf("failed to start postgres container: %v", err)
	}

	success := false
	defer func() {
		if !success {
			if err := container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
			}
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode="+cfg.SSLMode)
	if err != nil {
		return nil, errors.Errorf("failed to build connection string: %v", err)
	}

	pool, err := connectPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Postgres container started", zap.String("image", cfg.ImageName))
	success = true

	return &Container{
		container: container,
		pool:      pool,
		dsn:       dsn,
		cfg:       cfg,
	}, nil
}

func (c *Container) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *Container) DSN() string {
	return c.dsn
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}

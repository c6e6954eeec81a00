package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/you-humble/motorcycle-registry/internal/config"
	repository "github.com/you-humble/motorcycle-registry/internal/repository/motorcycle"
	service "github.com/you-humble/motorcycle-registry/internal/service/motorcycle"
	"github.com/you-humble/motorcycle-registry/internal/transport/http/health"
	"github.com/you-humble/motorcycle-registry/internal/transport/http/middleware"
	thttp "github.com/you-humble/motorcycle-registry/internal/transport/http/motorcycle/v1"
	"github.com/you-humble/motorcycle-registry/platform/closer"
	"github.com/you-humble/motorcycle-registry/platform/db/migrator"
	"github.com/you-humble/motorcycle-registry/platform/logger"
)

type MotorcycleHandler interface {
	Register(r chi.Router)
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository service.MotorcycleRepository

	service thttp.MotorcycleService
	handler MotorcycleHandler

	registry *prometheus.Registry
	metrics  *middleware.Metrics

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) MotorcycleRepository(ctx context.Context) service.MotorcycleRepository {
	if d.repository == nil {
		d.repository = repository.NewMotorcycleRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) MotorcycleService(ctx context.Context) thttp.MotorcycleService {
	if d.service == nil {
		d.service = service.NewMotorcycleService(
			d.MotorcycleRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) MotorcycleHandler(ctx context.Context) MotorcycleHandler {
	if d.handler == nil {
		d.handler = thttp.NewMotorcycleHandler(d.MotorcycleService(ctx))
	}

	return d.handler
}

func (d *di) Registry(_ context.Context) *prometheus.Registry {
	if d.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		d.registry = reg
	}

	return d.registry
}

func (d *di) Metrics(ctx context.Context) *middleware.Metrics {
	if d.metrics == nil {
		m, err := middleware.NewMetrics(d.Registry(ctx))
		if err != nil {
			panic(fmt.Sprintf("failed to register http metrics: %v\n", err))
		}
		d.metrics = m
	}

	return d.metrics
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		r := chi.NewRouter()
		r.Use(
			chimw.RealIP,
			middleware.RequestID,
			middleware.Logging(logger.L()),
			d.Metrics(ctx).Handler,
			middleware.Recovery(logger.L()),
		)

		r.NotFound(thttp.NotFound)
		r.MethodNotAllowed(thttp.MethodNotAllowed)

		r.Get("/health", health.HealthCheck)
		r.Get("/ready", health.Readiness(d.DBPool(ctx)))
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(d.Registry(ctx), promhttp.HandlerOpts{}))

		r.Route(config.C().Server.APIPrefix(), d.MotorcycleHandler(ctx).Register)

		d.router = r
	}

	return d.router
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	learningPersistence "github.com/felixgeelhaar/paretofocus/internal/learning/infrastructure/persistence"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/paretofocus/pkg/config"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// RepositoryFactory creates the feedback store for the configured backend.
// Tasks and sessions always live in the local SQLite database; only the
// feedback tallies can be moved to a shared server.
type RepositoryFactory struct {
	cfg     *config.Config
	db      *sql.DB
	driver  database.Driver
	logger  *slog.Logger
	metrics observability.Metrics

	pool        *pgxpool.Pool
	redisClient *redis.Client
}

// NewRepositoryFactory creates a new repository factory. db is the local
// SQLite database.
func NewRepositoryFactory(cfg *config.Config, db *sql.DB, logger *slog.Logger, metrics observability.Metrics) *RepositoryFactory {
	url := cfg.FeedbackDatabaseURL
	if cfg.FeedbackBackend == config.BackendRedis {
		url = cfg.RedisURL
	}
	return &RepositoryFactory{
		cfg:     cfg,
		db:      db,
		driver:  database.ResolveDriver(cfg.FeedbackBackend, url),
		logger:  logger,
		metrics: metrics,
	}
}

// Driver returns the feedback backend in use.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.driver
}

// FeedbackStore connects to the configured backend. Remote stores are
// wrapped in a circuit breaker so an unreachable server degrades planning
// to neutral lifts instead of stalling it.
func (f *RepositoryFactory) FeedbackStore(ctx context.Context) (learning.Store, error) {
	switch f.driver {
	case database.DriverSQLite:
		if f.db == nil {
			return nil, fmt.Errorf("sqlite feedback store needs the local database")
		}
		return learningPersistence.NewSQLiteStore(f.db), nil

	case database.DriverMemory:
		return learningPersistence.NewMemoryStore(), nil

	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, f.cfg.FeedbackDatabaseURL, 4)
		if err != nil {
			return nil, err
		}
		store := learningPersistence.NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		f.pool = pool
		f.logger.Info("connected to feedback database", "driver", f.driver)
		return f.guard(store), nil

	case database.DriverRedis:
		client, err := database.OpenRedis(ctx, f.cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		f.redisClient = client
		f.logger.Info("connected to Redis", "driver", f.driver)
		return f.guard(learningPersistence.NewRedisStore(client, f.cfg.RedisPrefix)), nil

	default:
		return nil, fmt.Errorf("unsupported feedback backend: %s", f.driver)
	}
}

func (f *RepositoryFactory) guard(store learning.Store) learning.Store {
	cfg := learningPersistence.DefaultBreakerConfig()
	cfg.Name = "feedback-" + f.driver.String()
	if f.cfg.BreakerFailures > 0 {
		cfg.FailureThreshold = uint32(f.cfg.BreakerFailures)
	}
	cfg.Timeout = f.cfg.BreakerTimeout
	return learningPersistence.NewBreakerStore(store, cfg, observability.LogOperation(f.logger, "feedback-store", "driver", f.driver.String()), f.metrics)
}

// Close releases any remote connections the factory opened.
func (f *RepositoryFactory) Close() {
	if f.redisClient != nil {
		if err := f.redisClient.Close(); err != nil {
			f.logger.Warn("error closing Redis connection", "error", err)
		}
		f.redisClient = nil
	}
	if f.pool != nil {
		f.pool.Close()
		f.pool = nil
	}
}

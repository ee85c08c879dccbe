// Package app is the composition root: it opens the stores and wires the
// application services the CLI calls.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	insightsApp "github.com/felixgeelhaar/paretofocus/internal/insights/application"
	insightsDomain "github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	insightsPersistence "github.com/felixgeelhaar/paretofocus/internal/insights/infrastructure/persistence"
	learningApp "github.com/felixgeelhaar/paretofocus/internal/learning/application"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	learningPersistence "github.com/felixgeelhaar/paretofocus/internal/learning/infrastructure/persistence"
	planningApp "github.com/felixgeelhaar/paretofocus/internal/planning/application"
	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/paretofocus/pkg/config"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Tuning  config.Tuning
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Database
	DB       *sql.DB
	factory  *RepositoryFactory
	Feedback database.Driver

	// Repositories
	TaskRepo      task.Repository
	SessionRepo   insightsDomain.SessionRepository
	InterruptRepo insightsDomain.InterruptRepository
	FeedbackStore learning.Store

	// Task Command Handlers
	AddTaskHandler     *commands.AddTaskHandler
	UpdateTaskHandler  *commands.UpdateTaskHandler
	DeleteTaskHandler  *commands.DeleteTaskHandler
	ImportTasksHandler *commands.ImportTasksHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler

	// Services
	Recorder *learningApp.Recorder
	Insights *insightsApp.Service
	Planning *planningApp.Service
}

// NewContainer opens the local database, applies migrations, connects the
// configured feedback store and wires every handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tuning, err := config.LoadTuning(cfg.TuningFile)
	if err != nil {
		return nil, err
	}

	db, err := database.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := runSQLiteMigrations(ctx, db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	c := &Container{
		Config:  cfg,
		Tuning:  tuning.WithDefaultEnergy(cfg.DefaultEnergy),
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
		DB:      db,
	}

	c.factory = NewRepositoryFactory(cfg, db, logger, c.Metrics)
	c.Feedback = c.factory.Driver()
	store, err := c.factory.FeedbackStore(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open feedback store: %w", err)
	}

	c.TaskRepo = persistence.NewSQLiteTaskRepository(db)
	c.SessionRepo = insightsPersistence.NewSQLiteSessionRepository(db)
	c.InterruptRepo = insightsPersistence.NewSQLiteInterruptRepository(db)
	c.FeedbackStore = store
	c.wire()

	logger.Debug("container ready",
		"db", cfg.DBPath,
		"feedback", c.Feedback,
	)
	return c, nil
}

// NewInMemoryContainer creates a container with every store held in memory.
func NewInMemoryContainer(logger *slog.Logger) *Container {
	if logger == nil {
		logger = observability.Discard()
	}
	c := &Container{
		Config:        &config.Config{Env: "development", FeedbackBackend: config.BackendMemory},
		Tuning:        config.DefaultTuning(),
		Logger:        logger,
		Metrics:       observability.NewInMemoryMetrics(),
		Feedback:      database.DriverMemory,
		TaskRepo:      persistence.NewMemoryTaskRepository(),
		SessionRepo:   insightsPersistence.NewMemorySessionRepository(),
		InterruptRepo: insightsPersistence.NewMemoryInterruptRepository(),
		FeedbackStore: learningPersistence.NewMemoryStore(),
	}
	c.wire()
	return c
}

func (c *Container) wire() {
	c.Recorder = learningApp.NewRecorder(c.FeedbackStore, c.Logger, c.Metrics)
	c.Insights = insightsApp.NewService(c.SessionRepo, c.InterruptRepo, c.Tuning.Recommendations, c.Logger, c.Metrics)
	c.Planning = planningApp.NewService(
		planningApp.Dependencies{Tasks: c.TaskRepo, Feedback: c.Recorder, Sessions: c.Insights},
		planningApp.Settings{
			Scoring: c.Tuning.Scoring,
			Plan:    c.Tuning.Plan,
			Weights: c.Tuning.ProjectWeights,
		},
		c.Logger,
		c.Metrics,
	)

	c.AddTaskHandler = commands.NewAddTaskHandler(c.TaskRepo, c.Tuning.Scoring)
	c.UpdateTaskHandler = commands.NewUpdateTaskHandler(c.TaskRepo)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo, c.Recorder, c.SessionRepo, c.Logger)
	c.ImportTasksHandler = commands.NewImportTasksHandler(c.TaskRepo, c.Logger)

	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)
}

// ScoringConfig returns the effective scoring constants.
func (c *Container) ScoringConfig() planning.ScoringConfig {
	return c.Tuning.Scoring
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.factory != nil {
		c.factory.Close()
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Warn("error closing SQLite connection", "error", err)
		}
		c.DB = nil
	}
}

// runSQLiteMigrations applies SQLite schema migrations.
func runSQLiteMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	logger.Debug("running SQLite migrations")
	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		return err
	}
	logger.Debug("SQLite migrations completed")
	return nil
}

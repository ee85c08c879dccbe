package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	insightsQueries "github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	learningPersistence "github.com/felixgeelhaar/paretofocus/internal/learning/infrastructure/persistence"
	planningCommands "github.com/felixgeelhaar/paretofocus/internal/planning/application/commands"
	planningQueries "github.com/felixgeelhaar/paretofocus/internal/planning/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/paretofocus/pkg/config"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

func localConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:             "test",
		DBPath:          filepath.Join(t.TempDir(), "focus.db"),
		FeedbackBackend: config.BackendSQLite,
		BreakerFailures: 3,
	}
}

func TestNewContainer_LocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := localConfig(t)

	c, err := NewContainer(ctx, cfg, observability.Discard())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, database.DriverSQLite, c.Feedback)
	assert.IsType(t, &learningPersistence.SQLiteStore{}, c.FeedbackStore)

	added, err := c.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{Name: "Write launch post", Impact: 5, Duration: 30, Project: "Marketing"})
	require.NoError(t, err)

	plan, err := c.Planning.GeneratePlan(ctx, planningQueries.GeneratePlanQuery{Hours: 1})
	require.NoError(t, err)
	require.Equal(t, 1, plan.Plan.Len())
	assert.Equal(t, added.TaskID, plan.Plan.Items[0].Task.ID)

	done, err := c.Planning.CompleteBlock(ctx, planningCommands.CompleteBlockCommand{TaskID: added.TaskID, Feedback: "yes"})
	require.NoError(t, err)
	assert.Equal(t, learning.Counts{Yes: 1}, done.Counts)

	stats, err := c.Insights.GetStats(ctx, insightsQueries.GetStatsQuery{Since: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Overall.Total)
	assert.Equal(t, 1, stats.Overall.Effective)

	removed, err := c.DeleteTaskHandler.Handle(ctx, commands.DeleteTaskCommand{TaskID: added.TaskID})
	require.NoError(t, err)
	assert.Equal(t, 1, removed.SessionsRemoved)

	counts, err := c.Recorder.Counts(ctx, added.TaskID)
	require.NoError(t, err)
	assert.True(t, counts.IsEmpty())
}

func TestNewContainer_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := localConfig(t)

	first, err := NewContainer(ctx, cfg, nil)
	require.NoError(t, err)
	_, err = first.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{Name: "Inbox"})
	require.NoError(t, err)
	first.Close()

	second, err := NewContainer(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	list, err := second.TaskRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Inbox", list[0].Name)
}

func TestNewContainer_TuningFile(t *testing.T) {
	cfg := localConfig(t)
	cfg.TuningFile = filepath.Join(t.TempDir(), "tuning.yaml")
	cfg.DefaultEnergy = 5
	require.NoError(t, os.WriteFile(cfg.TuningFile, []byte("plan:\n  max_items: 3\nproject_weights:\n  Deep: 2\n"), 0o600))

	c, err := NewContainer(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 3, c.Tuning.Plan.MaxItems)
	assert.Equal(t, 2.0, c.Tuning.ProjectWeights.Weight("Deep"))
	assert.Equal(t, 5, c.ScoringConfig().DefaultEnergy)
}

func TestNewContainer_BadTuningFile(t *testing.T) {
	cfg := localConfig(t)
	cfg.TuningFile = filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(cfg.TuningFile, []byte("plan: [1, 2"), 0o600))

	_, err := NewContainer(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewInMemoryContainer(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryContainer(nil)
	defer c.Close()

	_, err := c.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{Name: "Sketch"})
	require.NoError(t, err)

	rec, err := c.GetTaskHandler.Handle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sketch", rec.Name)

	_, err = c.GetTaskHandler.Handle(ctx, 2)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestRepositoryFactory_FeedbackStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		f := NewRepositoryFactory(&config.Config{FeedbackBackend: config.BackendMemory}, nil, observability.Discard(), nil)
		store, err := f.FeedbackStore(ctx)
		require.NoError(t, err)
		assert.IsType(t, &learningPersistence.MemoryStore{}, store)
	})

	t.Run("sqlite without database", func(t *testing.T) {
		f := NewRepositoryFactory(&config.Config{FeedbackBackend: config.BackendSQLite}, nil, observability.Discard(), nil)
		_, err := f.FeedbackStore(ctx)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		f := NewRepositoryFactory(&config.Config{FeedbackBackend: "etcd"}, nil, observability.Discard(), nil)
		_, err := f.FeedbackStore(ctx)
		assert.Error(t, err)
	})
}

func TestRepositoryFactory_RedisIsGuarded(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	cfg := &config.Config{FeedbackBackend: config.BackendRedis, RedisURL: url, RedisPrefix: "focus:test", BreakerFailures: 2}
	f := NewRepositoryFactory(cfg, nil, observability.Discard(), observability.NewInMemoryMetrics())
	defer f.Close()

	store, err := f.FeedbackStore(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &learningPersistence.BreakerStore{}, store)
}

func TestRepositoryFactory_PostgresIsGuarded(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	cfg := &config.Config{FeedbackBackend: config.BackendPostgres, FeedbackDatabaseURL: url, BreakerFailures: 2}
	f := NewRepositoryFactory(cfg, nil, observability.Discard(), observability.NewInMemoryMetrics())
	defer f.Close()

	store, err := f.FeedbackStore(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &learningPersistence.BreakerStore{}, store)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars blanks every variable Load reads for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"FOCUS_ENV", "LOG_LEVEL", "FOCUS_LOG_LEVEL", "FOCUS_LOG_FORMAT",
		"FOCUS_DB_PATH", "FEEDBACK_BACKEND", "FEEDBACK_DATABASE_URL",
		"REDIS_URL", "REDIS_FEEDBACK_PREFIX",
		"STORE_BREAKER_FAILURES", "STORE_BREAKER_TIMEOUT",
		"FOCUS_TUNING_FILE", "DEFAULT_ENERGY",
	} {
		t.Setenv(v, "")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, BackendSQLite, cfg.FeedbackBackend)
	assert.False(t, cfg.RemoteFeedback())
	assert.Equal(t, 3, cfg.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, "focus:feedback", cfg.RedisPrefix)
	assert.Zero(t, cfg.DefaultEnergy)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("FOCUS_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FOCUS_DB_PATH", "/tmp/focus.db")
	t.Setenv("FEEDBACK_BACKEND", "Postgres")
	t.Setenv("FEEDBACK_DATABASE_URL", "postgres://u:p@localhost/focus")
	t.Setenv("STORE_BREAKER_FAILURES", "5")
	t.Setenv("STORE_BREAKER_TIMEOUT", "10s")
	t.Setenv("DEFAULT_ENERGY", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/focus.db", cfg.DBPath)
	assert.Equal(t, BackendPostgres, cfg.FeedbackBackend)
	assert.True(t, cfg.RemoteFeedback())
	assert.Equal(t, 5, cfg.BreakerFailures)
	assert.Equal(t, 10*time.Second, cfg.BreakerTimeout)
	assert.Equal(t, 4, cfg.DefaultEnergy)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORE_BREAKER_FAILURES", "many")
	t.Setenv("STORE_BREAKER_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "sqlite", cfg: Config{FeedbackBackend: BackendSQLite, BreakerFailures: 1}},
		{name: "memory", cfg: Config{FeedbackBackend: BackendMemory, BreakerFailures: 1}},
		{name: "postgres without url", cfg: Config{FeedbackBackend: BackendPostgres, BreakerFailures: 1}, wantErr: true},
		{name: "redis with url", cfg: Config{FeedbackBackend: BackendRedis, RedisURL: "redis://x", BreakerFailures: 1}},
		{name: "unknown backend", cfg: Config{FeedbackBackend: "mongo", BreakerFailures: 1}, wantErr: true},
		{name: "zero breaker threshold", cfg: Config{FeedbackBackend: BackendSQLite}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseTuning_OverlaysDefaults(t *testing.T) {
	data := []byte(`
scoring:
  lift_min: 0.8
  high_energy_multiplier: 1.2
plan:
  max_items: 4
project_weights:
  Writing: 1.5
recommendations:
  min_samples: 3
`)
	tuning, err := ParseTuning(data)
	require.NoError(t, err)

	def := DefaultTuning()
	assert.Equal(t, 0.8, tuning.Scoring.LiftMin)
	assert.Equal(t, def.Scoring.LiftMax, tuning.Scoring.LiftMax)
	assert.Equal(t, 1.2, tuning.Scoring.HighEnergyMultiplier)
	assert.Equal(t, def.Scoring.DefaultBlockMinutes, tuning.Scoring.DefaultBlockMinutes)
	assert.Equal(t, 4, tuning.Plan.MaxItems)
	assert.Equal(t, def.Plan.MinItems, tuning.Plan.MinItems)
	assert.Equal(t, 1.5, tuning.ProjectWeights.Weight("Writing"))
	assert.Equal(t, 3, tuning.Recommendations.MinSamples)
	assert.Equal(t, def.Recommendations.HighRate, tuning.Recommendations.HighRate)
}

func TestParseTuning_Invalid(t *testing.T) {
	_, err := ParseTuning([]byte("scoring: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadTuning(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		tuning, err := LoadTuning("")
		require.NoError(t, err)
		assert.Equal(t, DefaultTuning(), tuning)
	})

	t.Run("missing file", func(t *testing.T) {
		tuning, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultTuning(), tuning)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		require.NoError(t, os.WriteFile(path, []byte("plan:\n  min_items: 3\n"), 0o600))

		tuning, err := LoadTuning(path)
		require.NoError(t, err)
		assert.Equal(t, 3, tuning.Plan.MinItems)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadTuning(t.TempDir())
		assert.ErrorContains(t, err, "failed to read tuning file")
	})
}

func TestTuning_WithDefaultEnergy(t *testing.T) {
	assert.Equal(t, 5, DefaultTuning().WithDefaultEnergy(5).Scoring.DefaultEnergy)
	assert.Equal(t, 3, DefaultTuning().WithDefaultEnergy(9).Scoring.DefaultEnergy)
	assert.Equal(t, 3, DefaultTuning().WithDefaultEnergy(0).Scoring.DefaultEnergy)
}

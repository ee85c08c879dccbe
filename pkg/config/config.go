// Package config loads runtime settings from the environment and the
// optional tuning file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Feedback store backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// ErrInvalidConfig is returned when the environment describes an unusable setup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	// Application
	Env       string
	LogLevel  string
	LogFormat string

	// Local store for tasks, sessions and (by default) feedback.
	DBPath string

	// Feedback store
	FeedbackBackend     string
	FeedbackDatabaseURL string
	RedisURL            string
	RedisPrefix         string

	// Circuit breaker around remote feedback stores
	BreakerFailures int
	BreakerTimeout  time.Duration

	// Planning
	TuningFile    string
	DefaultEnergy int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Env:       getEnv("FOCUS_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", getEnv("FOCUS_LOG_LEVEL", "warn")),
		LogFormat: getEnv("FOCUS_LOG_FORMAT", ""),

		DBPath: getEnv("FOCUS_DB_PATH", ""),

		FeedbackBackend:     strings.ToLower(getEnv("FEEDBACK_BACKEND", BackendSQLite)),
		FeedbackDatabaseURL: getEnv("FEEDBACK_DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix:         getEnv("REDIS_FEEDBACK_PREFIX", "focus:feedback"),

		BreakerFailures: getIntEnv("STORE_BREAKER_FAILURES", 3),
		BreakerTimeout:  getDurationEnv("STORE_BREAKER_TIMEOUT", 30*time.Second),

		TuningFile:    getEnv("FOCUS_TUNING_FILE", ""),
		DefaultEnergy: getIntEnv("DEFAULT_ENERGY", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected feedback backend has what it needs.
func (c *Config) Validate() error {
	switch c.FeedbackBackend {
	case BackendSQLite, BackendMemory:
	case BackendPostgres:
		if c.FeedbackDatabaseURL == "" {
			return fmt.Errorf("%w: FEEDBACK_DATABASE_URL is required for the postgres backend", ErrInvalidConfig)
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("%w: REDIS_URL is required for the redis backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown FEEDBACK_BACKEND %q", ErrInvalidConfig, c.FeedbackBackend)
	}
	if c.BreakerFailures < 1 {
		return fmt.Errorf("%w: STORE_BREAKER_FAILURES must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RemoteFeedback reports whether feedback lives outside the local database.
func (c *Config) RemoteFeedback() bool {
	return c.FeedbackBackend == BackendPostgres || c.FeedbackBackend == BackendRedis
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

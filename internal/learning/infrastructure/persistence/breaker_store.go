package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// BreakerConfig configures the circuit breaker around a remote store.
type BreakerConfig struct {
	// Name labels the breaker in logs.
	Name string

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns the breaker defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "feedback-store",
		FailureThreshold: 3,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// BreakerStore guards another Store with a circuit breaker. While the
// breaker is open, calls fail fast with domain.ErrStoreUnavailable instead
// of waiting on an unreachable server.
type BreakerStore struct {
	next    domain.Store
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps next.
func NewBreakerStore(next domain.Store, cfg BreakerConfig, logger *slog.Logger, metrics observability.Metrics) *BreakerStore {
	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"store", name,
				"from", from.String(),
				"to", to.String(),
			)
			if to == gobreaker.StateOpen {
				metrics.Counter(observability.MetricStoreBreakerOpen, 1, observability.T("store", name))
			}
		},
		// A cancelled caller says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &BreakerStore{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// State returns the breaker's current state.
func (s *BreakerStore) State() gobreaker.State {
	return s.breaker.State()
}

func (s *BreakerStore) Get(ctx context.Context, key domain.Key) (domain.Counts, error) {
	res, err := s.execute(func() (any, error) {
		return s.next.Get(ctx, key)
	})
	if err != nil {
		return domain.Counts{}, err
	}
	return res.(domain.Counts), nil
}

func (s *BreakerStore) Put(ctx context.Context, key domain.Key, counts domain.Counts) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.next.Put(ctx, key, counts)
	})
	return err
}

func (s *BreakerStore) Delete(ctx context.Context, key domain.Key) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.next.Delete(ctx, key)
	})
	return err
}

func (s *BreakerStore) execute(fn func() (any, error)) (any, error) {
	res, err := s.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return res, err
}

package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// GetInterruptsQuery asks for today's interrupts.
type GetInterruptsQuery struct {
	Now time.Time
}

// InterruptsResult lists today's interrupts with an hourly histogram.
type InterruptsResult struct {
	Today     []domain.Interrupt
	Histogram [24]int
}

// GetInterruptsHandler handles interrupt queries.
type GetInterruptsHandler struct {
	interruptRepo domain.InterruptRepository
}

// NewGetInterruptsHandler creates a new get interrupts handler.
func NewGetInterruptsHandler(interruptRepo domain.InterruptRepository) *GetInterruptsHandler {
	return &GetInterruptsHandler{interruptRepo: interruptRepo}
}

// Handle executes the interrupts query.
func (h *GetInterruptsHandler) Handle(ctx context.Context, query GetInterruptsQuery) (*InterruptsResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := domain.LastDays(1, now)

	list, err := h.interruptRepo.Since(ctx, today.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to load interrupts: %w", err)
	}

	result := &InterruptsResult{Histogram: domain.HourlyHistogram(list, now)}
	for _, it := range list {
		if today.Contains(it.At) {
			result.Today = append(result.Today, it)
		}
	}
	return result, nil
}

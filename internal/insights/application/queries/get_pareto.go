package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// GetParetoQuery asks for the weekly time breakdown ending at Now.
type GetParetoQuery struct {
	Now time.Time
}

// ParetoResult is the weekly breakdown with its total.
type ParetoResult struct {
	Buckets      []domain.ParetoBucket
	TotalMinutes int
	VitalCount   int
}

// GetParetoHandler handles weekly pareto queries.
type GetParetoHandler struct {
	sessionRepo domain.SessionRepository
}

// NewGetParetoHandler creates a new get pareto handler.
func NewGetParetoHandler(sessionRepo domain.SessionRepository) *GetParetoHandler {
	return &GetParetoHandler{sessionRepo: sessionRepo}
}

// Handle executes the pareto query.
func (h *GetParetoHandler) Handle(ctx context.Context, query GetParetoQuery) (*ParetoResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	sessions, err := h.sessionRepo.Since(ctx, domain.LastDays(7, now).Start)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	result := &ParetoResult{Buckets: domain.WeeklyPareto(sessions, now)}
	for _, b := range result.Buckets {
		result.TotalMinutes += b.Minutes
		if b.Vital {
			result.VitalCount++
		}
	}
	return result, nil
}

// Package queries contains query handlers for the insights bounded context.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// GetStatsQuery asks for effectiveness since a point in time.
// A zero Since covers the whole history.
type GetStatsQuery struct {
	Since time.Time
	Now   time.Time
}

// WindowStats is the effectiveness of one two-week window.
type WindowStats struct {
	Window domain.Window
	Stats  domain.EffectivenessStats
}

// StatsResult is everything the stats report shows.
type StatsResult struct {
	Since       time.Time
	Overall     domain.EffectivenessStats
	Streaks     domain.Streaks
	Windows     []WindowStats
	TopProjects []domain.ProjectEffectiveness
}

// GetStatsHandler handles stats queries.
type GetStatsHandler struct {
	sessionRepo domain.SessionRepository
}

// NewGetStatsHandler creates a new get stats handler.
func NewGetStatsHandler(sessionRepo domain.SessionRepository) *GetStatsHandler {
	return &GetStatsHandler{sessionRepo: sessionRepo}
}

// Handle executes the stats query.
func (h *GetStatsHandler) Handle(ctx context.Context, query GetStatsQuery) (*StatsResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	all, err := h.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	scoped := all
	if !query.Since.IsZero() {
		scoped = make([]domain.Session, 0, len(all))
		for _, s := range all {
			if !s.StartedAt.Before(query.Since) {
				scoped = append(scoped, s)
			}
		}
	}

	result := &StatsResult{
		Since:       query.Since,
		Overall:     domain.ComputeEffectiveness(scoped),
		Streaks:     domain.ComputeStreaks(all, now),
		TopProjects: domain.TopProjects(all, now, domain.DefaultTopProjectOptions()),
	}
	for _, w := range domain.TwoWeekWindows(2, now) {
		result.Windows = append(result.Windows, WindowStats{
			Window: w,
			Stats:  domain.ComputeEffectiveness(domain.FilterSessions(all, w)),
		})
	}
	return result, nil
}

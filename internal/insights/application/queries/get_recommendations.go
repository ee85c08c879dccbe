package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// GetRecommendationsQuery asks for suggestions from sessions since a point in time.
type GetRecommendationsQuery struct {
	Since time.Time
}

// GetRecommendationsHandler handles recommendation queries.
type GetRecommendationsHandler struct {
	sessionRepo domain.SessionRepository
	opts        domain.RecommendationOptions
}

// NewGetRecommendationsHandler creates a new get recommendations handler.
func NewGetRecommendationsHandler(sessionRepo domain.SessionRepository, opts domain.RecommendationOptions) *GetRecommendationsHandler {
	return &GetRecommendationsHandler{sessionRepo: sessionRepo, opts: opts}
}

// Handle executes the recommendations query.
func (h *GetRecommendationsHandler) Handle(ctx context.Context, query GetRecommendationsQuery) (domain.Recommendations, error) {
	sessions, err := h.sessionRepo.Since(ctx, query.Since)
	if err != nil {
		return domain.Recommendations{}, fmt.Errorf("failed to load sessions: %w", err)
	}
	return domain.TaskLevelRecommendations(sessions, h.opts), nil
}

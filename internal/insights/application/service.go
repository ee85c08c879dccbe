// Package application contains the application layer for the insights bounded context.
package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/paretofocus/internal/insights/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// Service provides a facade over all insights handlers.
type Service struct {
	logSessionHandler   *commands.LogSessionHandler
	logInterruptHandler *commands.LogInterruptHandler

	getStatsHandler           *queries.GetStatsHandler
	getRecommendationsHandler *queries.GetRecommendationsHandler
	getParetoHandler          *queries.GetParetoHandler
	getInterruptsHandler      *queries.GetInterruptsHandler
}

// NewService creates a new insights service.
func NewService(
	sessionRepo domain.SessionRepository,
	interruptRepo domain.InterruptRepository,
	recommendations domain.RecommendationOptions,
	logger *slog.Logger,
	metrics observability.Metrics,
) *Service {
	return &Service{
		logSessionHandler:   commands.NewLogSessionHandler(sessionRepo, logger, metrics),
		logInterruptHandler: commands.NewLogInterruptHandler(interruptRepo),

		getStatsHandler:           queries.NewGetStatsHandler(sessionRepo),
		getRecommendationsHandler: queries.NewGetRecommendationsHandler(sessionRepo, recommendations),
		getParetoHandler:          queries.NewGetParetoHandler(sessionRepo),
		getInterruptsHandler:      queries.NewGetInterruptsHandler(interruptRepo),
	}
}

// LogSession records a completed focus block.
func (s *Service) LogSession(ctx context.Context, cmd commands.LogSessionCommand) (*domain.Session, error) {
	return s.logSessionHandler.Handle(ctx, cmd)
}

// LogInterrupt records an interruption.
func (s *Service) LogInterrupt(ctx context.Context, cmd commands.LogInterruptCommand) (*domain.Interrupt, error) {
	return s.logInterruptHandler.Handle(ctx, cmd)
}

// GetStats returns effectiveness, streaks and windows.
func (s *Service) GetStats(ctx context.Context, query queries.GetStatsQuery) (*queries.StatsResult, error) {
	return s.getStatsHandler.Handle(ctx, query)
}

// GetRecommendations returns projects to do more of and to review.
func (s *Service) GetRecommendations(ctx context.Context, query queries.GetRecommendationsQuery) (domain.Recommendations, error) {
	return s.getRecommendationsHandler.Handle(ctx, query)
}

// GetPareto returns the weekly time breakdown.
func (s *Service) GetPareto(ctx context.Context, query queries.GetParetoQuery) (*queries.ParetoResult, error) {
	return s.getParetoHandler.Handle(ctx, query)
}

// GetInterrupts returns today's interrupts.
func (s *Service) GetInterrupts(ctx context.Context, query queries.GetInterruptsQuery) (*queries.InterruptsResult, error) {
	return s.getInterruptsHandler.Handle(ctx, query)
}

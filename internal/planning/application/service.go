// Package application contains the planning use cases: building a plan
// from the task pool and closing the loop with feedback.
package application

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/paretofocus/internal/planning/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/planning/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// Settings are the tuning values the planning service applies.
type Settings struct {
	Scoring domain.ScoringConfig
	Plan    domain.PlanOptions
	Weights domain.ProjectWeights
}

// Service provides a facade over the planning handlers.
type Service struct {
	generatePlanHandler  *queries.GeneratePlanHandler
	completeBlockHandler *commands.CompleteBlockHandler
	logger               *slog.Logger
	metrics              observability.Metrics
}

// Dependencies groups the collaborators the planning service needs.
type Dependencies struct {
	Tasks    task.Repository
	Feedback interface {
		queries.FeedbackSource
		commands.FeedbackRecorder
	}
	Sessions commands.SessionLogger
}

// NewService creates a new planning service.
func NewService(deps Dependencies, settings Settings, logger *slog.Logger, metrics observability.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	fitter := domain.NewFitter(domain.NewScorer(settings.Scoring))
	return &Service{
		logger:  logger,
		metrics: metrics,
		generatePlanHandler: queries.NewGeneratePlanHandler(
			deps.Tasks, deps.Feedback, fitter, settings.Weights, settings.Plan, logger, metrics,
		),
		completeBlockHandler: commands.NewCompleteBlockHandler(deps.Tasks, deps.Feedback, deps.Sessions, logger),
	}
}

// GeneratePlan builds a plan for the given budget and energy.
func (s *Service) GeneratePlan(ctx context.Context, query queries.GeneratePlanQuery) (*queries.GeneratePlanResult, error) {
	return observability.TimeOperationResult(ctx, s.logger, s.metrics, "plan.generate", func() (*queries.GeneratePlanResult, error) {
		return s.generatePlanHandler.Handle(ctx, query)
	})
}

// CompleteBlock records feedback for a task and logs the session.
func (s *Service) CompleteBlock(ctx context.Context, cmd commands.CompleteBlockCommand) (*commands.CompleteBlockResult, error) {
	return observability.TimeOperationResult(ctx, s.logger, s.metrics, "plan.complete_block", func() (*commands.CompleteBlockResult, error) {
		return s.completeBlockHandler.Handle(ctx, cmd)
	})
}

// Package queries contains the plan generation use case.
package queries

import (
	"context"
	"fmt"
	"log/slog"

	learningapp "github.com/felixgeelhaar/paretofocus/internal/learning/application"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// FeedbackSource loads the feedback history for a set of tasks.
// *learningapp.Recorder satisfies it.
type FeedbackSource interface {
	Snapshot(ctx context.Context, refs []learningapp.TaskRef) *learning.Snapshot
}

// GeneratePlanQuery describes the time and energy available right now.
type GeneratePlanQuery struct {
	Hours       int
	Minutes     int
	BusyMinutes int
	Energy      int // 0 selects the configured default
	MinItems    int // 0 selects the configured default
	MaxItems    int // 0 selects the configured default
	Explain     bool
}

// GeneratePlanResult is the suggested plan. Breakdowns is filled only when
// the query asked for an explanation, one entry per planned task in order.
type GeneratePlanResult struct {
	Plan       domain.Plan
	PoolSize   int
	Breakdowns []domain.ScoreBreakdown
}

// GeneratePlanHandler ranks the task pool and packs it into the budget.
type GeneratePlanHandler struct {
	taskRepo task.Repository
	feedback FeedbackSource
	fitter   *domain.Fitter
	weights  domain.ProjectWeights
	defaults domain.PlanOptions
	logger   *slog.Logger
	metrics  observability.Metrics
}

// NewGeneratePlanHandler creates a new GeneratePlanHandler. A nil feedback
// source plans without history.
func NewGeneratePlanHandler(
	taskRepo task.Repository,
	feedback FeedbackSource,
	fitter *domain.Fitter,
	weights domain.ProjectWeights,
	defaults domain.PlanOptions,
	logger *slog.Logger,
	metrics observability.Metrics,
) *GeneratePlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &GeneratePlanHandler{
		taskRepo: taskRepo,
		feedback: feedback,
		fitter:   fitter,
		weights:  weights,
		defaults: defaults,
		logger:   logger,
		metrics:  metrics,
	}
}

// Handle executes the GeneratePlanQuery.
func (h *GeneratePlanHandler) Handle(ctx context.Context, query GeneratePlanQuery) (*GeneratePlanResult, error) {
	records, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	tasks := task.Tasks(records)

	var fb domain.FeedbackView
	if h.feedback != nil {
		refs := make([]learningapp.TaskRef, 0, len(tasks))
		for _, t := range tasks {
			refs = append(refs, learningapp.TaskRef{ID: t.ID, Project: t.Project})
		}
		fb = h.feedback.Snapshot(ctx, refs)
	}

	opts := h.defaults
	if query.MinItems != 0 {
		opts.MinItems = query.MinItems
	}
	if query.MaxItems != 0 {
		opts.MaxItems = query.MaxItems
	}

	budget := domain.AvailableMinutes(query.Hours, query.Minutes, query.BusyMinutes)
	plan := h.fitter.Fit(tasks, budget, query.Energy, fb, h.weights, opts)

	result := &GeneratePlanResult{Plan: plan, PoolSize: len(tasks)}
	if query.Explain {
		scorer := h.fitter.Scorer()
		for _, item := range plan.Items {
			result.Breakdowns = append(result.Breakdowns, scorer.Explain(item.Task, fb, plan.Energy, h.weights))
		}
	}

	h.metrics.Counter(observability.MetricPlansGenerated, 1)
	h.metrics.Histogram(observability.MetricPlanItems, float64(plan.Len()))
	if plan.OverBudget() {
		h.metrics.Counter(observability.MetricPlanOverBudget, 1)
	}
	h.logger.DebugContext(ctx, "plan generated",
		"pool", len(tasks),
		"items", plan.Len(),
		"budget_minutes", plan.BudgetMinutes,
		"used_minutes", plan.UsedMinutes,
		"energy", plan.Energy,
	)
	return result, nil
}

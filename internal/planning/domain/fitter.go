package domain

import "sort"

// Fitter selects and orders tasks to fit a time budget.
type Fitter struct {
	scorer *Scorer
}

// NewFitter creates a fitter that ranks with the given scorer.
// A nil scorer uses the default configuration.
func NewFitter(scorer *Scorer) *Fitter {
	if scorer == nil {
		scorer = NewScorer(DefaultScoringConfig())
	}
	return &Fitter{scorer: scorer}
}

// Scorer returns the scorer used for ranking.
func (f *Fitter) Scorer() *Scorer {
	return f.scorer
}

// Rank scores every task and orders them best first.
// Equal scores fall back to shorter duration, then lower id.
func (f *Fitter) Rank(tasks []Task, energy int, fb FeedbackView, weights ProjectWeights) []PlannedTask {
	cfg := f.scorer.Config()
	ranked := make([]PlannedTask, 0, len(tasks))
	for _, t := range tasks {
		nt := t.Normalize(cfg)
		ranked = append(ranked, PlannedTask{
			Task:  nt,
			Score: f.scorer.Score(nt, fb, energy, weights),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Task.Duration != b.Task.Duration {
			return a.Task.Duration < b.Task.Duration
		}
		return a.Task.ID < b.Task.ID
	})
	return ranked
}

// Fit builds a plan for budgetMinutes.
//
// Tasks are taken greedily in rank order while they fit. The first ranked
// task is always taken, even alone over budget, so a non-empty pool never
// yields an empty plan. If fewer than MinItems fit, the highest ranked
// leftovers are appended regardless of budget.
func (f *Fitter) Fit(tasks []Task, budgetMinutes int, energy int, fb FeedbackView, weights ProjectWeights, opts PlanOptions) Plan {
	opts = opts.Normalize()
	cfg := f.scorer.Config()

	plan := Plan{
		Items:         make([]PlannedTask, 0, opts.MaxItems),
		BudgetMinutes: budgetMinutes,
		Energy:        cfg.NormalizeEnergy(energy),
	}
	if len(tasks) == 0 {
		return plan
	}

	ranked := f.Rank(tasks, energy, fb, weights)
	selected := make([]bool, len(ranked))

	for i, candidate := range ranked {
		if len(plan.Items) >= opts.MaxItems {
			break
		}
		if plan.UsedMinutes+candidate.Task.Duration <= budgetMinutes || len(plan.Items) == 0 {
			plan.Items = append(plan.Items, candidate)
			plan.UsedMinutes += candidate.Task.Duration
			selected[i] = true
		}
	}

	for i, candidate := range ranked {
		if len(plan.Items) >= opts.MinItems {
			break
		}
		if selected[i] {
			continue
		}
		candidate.Backfilled = true
		plan.Items = append(plan.Items, candidate)
		plan.UsedMinutes += candidate.Task.Duration
		selected[i] = true
	}

	if len(plan.Items) > opts.MaxItems {
		for _, dropped := range plan.Items[opts.MaxItems:] {
			plan.UsedMinutes -= dropped.Task.Duration
		}
		plan.Items = plan.Items[:opts.MaxItems]
	}

	return plan
}

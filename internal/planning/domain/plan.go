package domain

const (
	// DefaultMinItems is the fewest tasks a plan aims for.
	DefaultMinItems = 2
	// DefaultMaxItems is the most tasks a plan may hold.
	DefaultMaxItems = 5
)

// PlanOptions bounds the number of tasks in a plan.
// Zero values select the defaults.
type PlanOptions struct {
	MinItems int `yaml:"min_items"`
	MaxItems int `yaml:"max_items"`
}

// Normalize clamps MinItems to [2,5] and MaxItems to [MinItems,5].
func (o PlanOptions) Normalize() PlanOptions {
	minItems := o.MinItems
	if minItems == 0 {
		minItems = DefaultMinItems
	}
	minItems = clampInt(minItems, DefaultMinItems, DefaultMaxItems)

	maxItems := o.MaxItems
	if maxItems == 0 {
		maxItems = DefaultMaxItems
	}
	maxItems = clampInt(maxItems, minItems, DefaultMaxItems)

	return PlanOptions{MinItems: minItems, MaxItems: maxItems}
}

// PlannedTask is a task selected into a plan together with its ranking score.
type PlannedTask struct {
	Task  Task    `json:"task"`
	Score float64 `json:"score"`
	// Backfilled marks tasks added only to reach the minimum item count.
	Backfilled bool `json:"backfilled,omitempty"`
}

// Plan is the ordered subset of tasks suggested for a time budget.
// Plans are recomputed on demand and never persisted by the core.
type Plan struct {
	Items         []PlannedTask `json:"items"`
	BudgetMinutes int           `json:"budget_minutes"`
	UsedMinutes   int           `json:"used_minutes"`
	Energy        int           `json:"energy"`
}

// Tasks returns the planned tasks in order.
func (p Plan) Tasks() []Task {
	tasks := make([]Task, 0, len(p.Items))
	for _, item := range p.Items {
		tasks = append(tasks, item.Task)
	}
	return tasks
}

// Len returns the number of planned tasks.
func (p Plan) Len() int {
	return len(p.Items)
}

// IsEmpty reports whether nothing was planned.
func (p Plan) IsEmpty() bool {
	return len(p.Items) == 0
}

// OverBudget reports whether the planned minutes exceed the budget.
func (p Plan) OverBudget() bool {
	return p.UsedMinutes > p.BudgetMinutes
}

// RemainingMinutes returns the unplanned part of the budget, never negative.
func (p Plan) RemainingMinutes() int {
	return max(0, p.BudgetMinutes-p.UsedMinutes)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

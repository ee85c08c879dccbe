package domain

import (
	"math"
	"math/rand"
	"testing"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planIDs(p Plan) []int64 {
	ids := make([]int64, 0, p.Len())
	for _, t := range p.Tasks() {
		ids = append(ids, t.ID)
	}
	return ids
}

func sumDuration(items []PlannedTask) int {
	total := 0
	for _, item := range items {
		total += item.Task.Duration
	}
	return total
}

func TestPlanOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PlanOptions
		want PlanOptions
	}{
		{"defaults", PlanOptions{}, PlanOptions{MinItems: 2, MaxItems: 5}},
		{"min clamped up", PlanOptions{MinItems: 1}, PlanOptions{MinItems: 2, MaxItems: 5}},
		{"min clamped down", PlanOptions{MinItems: 9}, PlanOptions{MinItems: 5, MaxItems: 5}},
		{"max below min", PlanOptions{MinItems: 4, MaxItems: 3}, PlanOptions{MinItems: 4, MaxItems: 4}},
		{"max above cap", PlanOptions{MinItems: 2, MaxItems: 12}, PlanOptions{MinItems: 2, MaxItems: 5}},
		{"explicit", PlanOptions{MinItems: 3, MaxItems: 4}, PlanOptions{MinItems: 3, MaxItems: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestFitter_Rank(t *testing.T) {
	fitter := NewFitter(nil)

	t.Run("descending score", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Impact: 5, Duration: 45},
			{ID: 2, Impact: 2, Duration: 20},
			{ID: 3, Impact: 4, Duration: 30},
		}
		ranked := fitter.Rank(tasks, 3, nil, nil)

		require.Len(t, ranked, 3)
		assert.Equal(t, int64(3), ranked[0].Task.ID)
		assert.Equal(t, int64(1), ranked[1].Task.ID)
		assert.Equal(t, int64(2), ranked[2].Task.ID)
		assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
		assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
	})

	t.Run("ties break by duration then id", func(t *testing.T) {
		// Identical density: impact/duration is the same for all three.
		tasks := []Task{
			{ID: 9, Impact: 2, Duration: 20},
			{ID: 4, Impact: 1, Duration: 10},
			{ID: 2, Impact: 1, Duration: 10},
		}
		ranked := fitter.Rank(tasks, 3, nil, nil)

		ids := []int64{ranked[0].Task.ID, ranked[1].Task.ID, ranked[2].Task.ID}
		assert.Equal(t, []int64{2, 4, 9}, ids)
	})

	t.Run("feedback reorders", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Impact: 3, Duration: 30},
			{ID: 2, Impact: 3, Duration: 30},
		}
		fb := learning.NewSnapshot().
			WithTask(1, learning.Counts{No: 5}).
			WithTask(2, learning.Counts{Yes: 5})

		ranked := fitter.Rank(tasks, 3, fb, nil)
		assert.Equal(t, int64(2), ranked[0].Task.ID)
	})

	t.Run("NaN confidence does not scramble the order", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Impact: 1, Duration: 60},
			{ID: 2, Impact: 2, Duration: 40, Confidence: Float64(math.NaN())},
			{ID: 3, Impact: 5, Duration: 10},
			{ID: 4, Impact: 3, Duration: 15},
		}
		ranked := fitter.Rank(tasks, 3, nil, nil)

		ids := make([]int64, 0, len(ranked))
		for _, r := range ranked {
			assert.False(t, math.IsNaN(r.Score))
			ids = append(ids, r.Task.ID)
		}
		assert.Equal(t, []int64{3, 4, 2, 1}, ids)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		tasks := []Task{{ID: 1}, {ID: 2, Impact: 5, Duration: 10}}
		_ = fitter.Rank(tasks, 3, nil, nil)

		assert.Equal(t, Task{ID: 1}, tasks[0])
	})
}

func TestFitter_Fit_Scenarios(t *testing.T) {
	fitter := NewFitter(NewScorer(DefaultScoringConfig()))

	t.Run("three tasks in an hour", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Name: "Deep work", Impact: 5, Duration: 45},
			{ID: 2, Name: "Email", Impact: 2, Duration: 20},
			{ID: 3, Name: "Review", Impact: 4, Duration: 30},
		}

		plan := fitter.Fit(tasks, 60, 3, nil, nil, PlanOptions{})

		// 4/30 > 5/45 > 2/20 by density; 3 then 2 fit in 50 minutes, 1 would overflow.
		assert.Equal(t, []int64{3, 2}, planIDs(plan))
		assert.Equal(t, 50, plan.UsedMinutes)
		assert.False(t, plan.OverBudget())
		assert.Equal(t, 10, plan.RemainingMinutes())
	})

	t.Run("raising the minimum backfills the rest", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Impact: 5, Duration: 45},
			{ID: 2, Impact: 2, Duration: 20},
			{ID: 3, Impact: 4, Duration: 30},
		}

		plan := fitter.Fit(tasks, 60, 3, nil, nil, PlanOptions{MinItems: 3})

		assert.Equal(t, []int64{3, 2, 1}, planIDs(plan))
		assert.True(t, plan.Items[2].Backfilled)
		assert.True(t, plan.OverBudget())
	})

	t.Run("zero budget still suggests one task", func(t *testing.T) {
		tasks := []Task{{ID: 1, Name: "Only", Impact: 3, Duration: 30}}

		plan := fitter.Fit(tasks, 0, 3, nil, nil, PlanOptions{})

		assert.Equal(t, []int64{1}, planIDs(plan))
		assert.Equal(t, 30, plan.UsedMinutes)
		assert.True(t, plan.OverBudget())
	})

	t.Run("negative budget still suggests tasks", func(t *testing.T) {
		tasks := []Task{{ID: 1, Duration: 10}, {ID: 2, Duration: 10}, {ID: 3, Duration: 10}}

		plan := fitter.Fit(tasks, -30, 3, nil, nil, PlanOptions{})

		assert.Equal(t, 2, plan.Len())
		assert.False(t, plan.Items[0].Backfilled)
		assert.True(t, plan.Items[1].Backfilled)
	})

	t.Run("empty pool", func(t *testing.T) {
		plan := fitter.Fit(nil, 120, 3, nil, nil, PlanOptions{})

		assert.True(t, plan.IsEmpty())
		assert.Empty(t, plan.Tasks())
		assert.Equal(t, 120, plan.BudgetMinutes)
	})

	t.Run("caps at max items", func(t *testing.T) {
		tasks := make([]Task, 0, 10)
		for i := 1; i <= 10; i++ {
			tasks = append(tasks, Task{ID: int64(i), Impact: 3, Duration: 5})
		}

		plan := fitter.Fit(tasks, 1000, 3, nil, nil, PlanOptions{MaxItems: 4})

		assert.Equal(t, 4, plan.Len())
		assert.Equal(t, 20, plan.UsedMinutes)
	})

	t.Run("skips a task that does not fit and keeps going", func(t *testing.T) {
		tasks := []Task{
			{ID: 1, Impact: 5, Duration: 20},
			{ID: 2, Impact: 5, Duration: 50},
			{ID: 3, Impact: 1, Duration: 25},
		}

		plan := fitter.Fit(tasks, 50, 3, nil, nil, PlanOptions{})

		assert.Equal(t, []int64{1, 3}, planIDs(plan))
		assert.Equal(t, 45, plan.UsedMinutes)
	})

	t.Run("records normalized energy", func(t *testing.T) {
		plan := fitter.Fit([]Task{{ID: 1}}, 30, 99, nil, nil, PlanOptions{})
		assert.Equal(t, 3, plan.Energy)
	})
}

func TestFitter_Fit_Properties(t *testing.T) {
	fitter := NewFitter(nil)
	rng := rand.New(rand.NewSource(20250101))

	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(9)
		tasks := make([]Task, 0, n)
		for i := 0; i < n; i++ {
			tasks = append(tasks, Task{
				ID:       int64(i + 1),
				Impact:   1 + rng.Intn(5),
				Duration: 5 + rng.Intn(120),
			})
		}
		budget := rng.Intn(240) - 20
		energy := rng.Intn(7)

		plan := fitter.Fit(tasks, budget, energy, nil, nil, PlanOptions{})

		// Non-empty guarantee.
		if n > 0 {
			require.GreaterOrEqual(t, plan.Len(), 1)
		}

		// Bounded length.
		if n >= 2 {
			require.GreaterOrEqual(t, plan.Len(), 2)
			require.LessOrEqual(t, plan.Len(), 5)
		} else {
			require.Equal(t, n, plan.Len())
		}

		// Budget respect: the greedy selections stay within budget unless
		// the first pick alone was over it.
		var greedy []PlannedTask
		for _, item := range plan.Items {
			if !item.Backfilled {
				greedy = append(greedy, item)
			}
		}
		if len(greedy) > 1 {
			require.LessOrEqual(t, sumDuration(greedy), budget)
		}
		if len(greedy) == 1 && greedy[0].Task.Duration > budget {
			for _, item := range plan.Items[1:] {
				require.True(t, item.Backfilled)
			}
		}

		// When every task fits comfortably, nothing is backfilled and the total holds.
		total := 0
		for _, tk := range tasks {
			total += tk.Duration
		}
		if n >= 2 && n <= 5 && total <= budget {
			require.Equal(t, n, plan.Len())
			require.LessOrEqual(t, plan.UsedMinutes, budget)
		}

		// No duplicates and UsedMinutes is consistent.
		seen := map[int64]bool{}
		for _, item := range plan.Items {
			require.False(t, seen[item.Task.ID])
			seen[item.Task.ID] = true
		}
		require.Equal(t, sumDuration(plan.Items), plan.UsedMinutes)
	}
}

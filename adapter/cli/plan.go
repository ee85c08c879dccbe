package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/internal/planning/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/planning/domain"
)

type planOptions struct {
	hours    int
	minutes  int
	busy     int
	energy   int
	minItems int
	maxItems int
	explain  bool
}

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest the best tasks for the time you have",
		Long: `Rank the task pool by impact per minute, adjusted by past feedback and
your current energy, and pack the best tasks into the available time.

The top task is always included, even if it alone exceeds the budget.

Examples:
  focus plan                          # One hour at default energy
  focus plan --hours 2 --busy 30      # Two hours less a 30 minute meeting
  focus plan -m 45 --energy 5         # 45 minutes, feeling sharp
  focus plan --explain                # Show how each score was built`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := RequireApp()
			if err != nil {
				return err
			}

			result, err := app.PlanningService.GeneratePlan(cmd.Context(), queries.GeneratePlanQuery{
				Hours:       opts.hours,
				Minutes:     opts.minutes,
				BusyMinutes: opts.busy,
				Energy:      opts.energy,
				MinItems:    opts.minItems,
				MaxItems:    opts.maxItems,
				Explain:     opts.explain,
			})
			if err != nil {
				return fmt.Errorf("failed to build plan: %w", err)
			}

			renderPlan(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.hours, "hours", "H", 1, "hours available")
	cmd.Flags().IntVarP(&opts.minutes, "minutes", "m", 0, "additional minutes available")
	cmd.Flags().IntVarP(&opts.busy, "busy", "b", 0, "minutes already booked inside that window")
	cmd.Flags().IntVarP(&opts.energy, "energy", "e", 0, "energy level 1-5 (default from config)")
	cmd.Flags().IntVar(&opts.minItems, "min-items", 0, "fewest tasks to suggest (2-5)")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", 0, "most tasks to suggest (2-5)")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "show the score breakdown")
	return cmd
}

func renderPlan(w io.Writer, result *queries.GeneratePlanResult) {
	plan := result.Plan
	if result.PoolSize == 0 {
		fmt.Fprintln(w, "No tasks in the pool.")
		fmt.Fprintln(w, LabelStyle.Render(`Add one with: focus task add "Write report" --impact 4 --duration 30`))
		return
	}

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Plan for %s at energy %d", Minutes(plan.BudgetMinutes), plan.Energy)))
	fmt.Fprintln(w, LabelStyle.Render(fmt.Sprintf("%d of %d tasks, %s planned, %s left",
		plan.Len(), result.PoolSize, Minutes(plan.UsedMinutes), Minutes(plan.RemainingMinutes()))))
	fmt.Fprintln(w)

	for i, item := range plan.Items {
		line := fmt.Sprintf("%2d. %-32s %6s  %s", i+1, item.Task.Name, Minutes(item.Task.Duration),
			BadgeStyle.Render("["+item.Task.ProjectName()+"]"))
		if item.Backfilled {
			line += " " + LabelStyle.Render("(over budget)")
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, LabelStyle.Render(fmt.Sprintf("    #%d  impact %d  score %.4f", item.Task.ID, item.Task.Impact, item.Score)))
	}

	if plan.OverBudget() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf("Over budget by %s", Minutes(plan.UsedMinutes-plan.BudgetMinutes))))
	}

	if len(result.Breakdowns) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, TitleStyle.Render("Why these tasks"))
		for i, b := range result.Breakdowns {
			fmt.Fprintf(w, "%2d. %s\n", i+1, explainLine(b))
		}
	}
}

func explainLine(b domain.ScoreBreakdown) string {
	parts := []string{
		fmt.Sprintf("base %.3f", b.Base),
		fmt.Sprintf("per-minute %.4f", b.PerMinute),
		fmt.Sprintf("task lift x%.3f", b.TaskLift),
		fmt.Sprintf("project lift x%.3f", b.ProjectLift),
		fmt.Sprintf("energy x%.2f", b.EnergyMultiplier),
	}
	if b.ProjectWeight != 1 {
		parts = append(parts, fmt.Sprintf("weight x%.2f", b.ProjectWeight))
	}
	return strings.Join(parts, ", ") + fmt.Sprintf(" = %.4f", b.Score)
}

package insights

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

func newStatsCmd() *cobra.Command {
	var since string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how often focus blocks paid off",
		Long: `Show the share of focus blocks that moved the needle, with a 95%
confidence interval, streaks, the last two fortnights and the projects
that pay off most.

Examples:
  focus stats
  focus stats --since 2025-01-01
  focus stats --since 30d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			now := time.Now()
			from, err := parseSince(since, now)
			if err != nil {
				return err
			}

			result, err := app.InsightsService.GetStats(cmd.Context(), queries.GetStatsQuery{Since: from, Now: now})
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}
			renderStats(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only sessions since a date (YYYY-MM-DD) or day count (30d)")
	return cmd
}

func renderStats(w io.Writer, r *queries.StatsResult) {
	title := "Effectiveness (all time)"
	if !r.Since.IsZero() {
		title = fmt.Sprintf("Effectiveness since %s", r.Since.Format("2006-01-02"))
	}
	fmt.Fprintln(w, cli.TitleStyle.Render(title))

	if r.Overall.Total == 0 {
		fmt.Fprintln(w, "No sessions yet. Record one with: focus feedback <task-id> yes")
		return
	}
	fmt.Fprintln(w, effectivenessLine(r.Overall))
	fmt.Fprintln(w, cli.LabelStyle.Render(fmt.Sprintf("  %s focused", cli.Minutes(r.Overall.Minutes))))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Streak: %s (best %s)\n",
		cli.Plural(r.Streaks.Current, "day", "days"), cli.Plural(r.Streaks.Best, "day", "days"))

	if len(r.Windows) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.TitleStyle.Render("Fortnights"))
		for _, ws := range r.Windows {
			label := fmt.Sprintf("%s to %s", ws.Window.Start.Format("Jan 2"), ws.Window.End.AddDate(0, 0, -1).Format("Jan 2"))
			if ws.Stats.Total == 0 {
				fmt.Fprintf(w, "  %-16s %s\n", label, cli.LabelStyle.Render("no sessions"))
				continue
			}
			fmt.Fprintf(w, "  %-16s %s\n", label, effectivenessLine(ws.Stats))
		}
	}

	if len(r.TopProjects) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.TitleStyle.Render("Top projects (30 days)"))
		for _, p := range r.TopProjects {
			fmt.Fprintf(w, "  %-20s %3d%%  %d/%d\n", p.Project, p.RatePct, p.Effective, p.Done)
		}
	}
}

func effectivenessLine(s domain.EffectivenessStats) string {
	return fmt.Sprintf("%s effective (%d of %d)  95%% CI %s-%s",
		cli.Percent(s.EffectivenessPct), s.Effective, s.Total, cli.Percent(s.Low*100), cli.Percent(s.High*100))
}

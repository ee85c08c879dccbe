package insights

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
)

func newStreaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Show consecutive days with at least one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			result, err := app.InsightsService.GetStats(cmd.Context(), queries.GetStatsQuery{Now: time.Now()})
			if err != nil {
				return fmt.Errorf("failed to compute streaks: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Current streak: %s\n", cli.Plural(result.Streaks.Current, "day", "days"))
			fmt.Fprintf(w, "Best streak:    %s\n", cli.Plural(result.Streaks.Best, "day", "days"))
			if result.Streaks.Current == 0 {
				fmt.Fprintln(w, cli.LabelStyle.Render("Log a session today to start a new streak."))
			}
			return nil
		},
	}
}

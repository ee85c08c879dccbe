package insights

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
)

func newParetoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pareto",
		Short: "Show where this week's focus time went",
		Long: `Group the last seven days of sessions by task and show which few
account for 80% of the time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			result, err := app.InsightsService.GetPareto(cmd.Context(), queries.GetParetoQuery{Now: time.Now()})
			if err != nil {
				return fmt.Errorf("failed to compute pareto: %w", err)
			}
			renderPareto(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func renderPareto(w io.Writer, r *queries.ParetoResult) {
	if len(r.Buckets) == 0 {
		fmt.Fprintln(w, "No sessions in the last 7 days.")
		return
	}

	fmt.Fprintln(w, cli.TitleStyle.Render(fmt.Sprintf("Last 7 days: %s", cli.Minutes(r.TotalMinutes))))
	for _, b := range r.Buckets {
		marker := " "
		if b.Vital {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-24s %s %6s %5s\n", marker, b.Name, cli.Bar(b.Percent, 20), cli.Minutes(b.Minutes), cli.Percent(b.Percent))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.LabelStyle.Render(fmt.Sprintf("* %s of %d make up 80%% of your time",
		cli.Plural(r.VitalCount, "item", "items"), len(r.Buckets))))
}

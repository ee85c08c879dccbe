package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
)

func newInterruptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interrupt [reason]",
		Short: "Log something that broke your focus",
		Long: `Log an interruption, optionally with a reason.

Examples:
  focus interrupt
  focus interrupt "Slack ping from ops"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			interrupt, err := app.InsightsService.LogInterrupt(cmd.Context(), commands.LogInterruptCommand{
				Reason: strings.Join(args, " "),
			})
			if err != nil {
				return fmt.Errorf("failed to log interrupt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Interrupt logged at %s: %s\n", interrupt.At.Format("15:04"), interrupt.Reason)
			return nil
		},
	}
}

func newInterruptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interrupts",
		Short: "Show today's interrupts by hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			result, err := app.InsightsService.GetInterrupts(cmd.Context(), queries.GetInterruptsQuery{Now: time.Now()})
			if err != nil {
				return fmt.Errorf("failed to load interrupts: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(result.Today) == 0 {
				fmt.Fprintln(w, "No interrupts today.")
				return nil
			}

			fmt.Fprintln(w, cli.TitleStyle.Render(fmt.Sprintf("Interrupts today: %d", len(result.Today))))
			peak := 1
			for _, n := range result.Histogram {
				peak = max(peak, n)
			}
			for hour, n := range result.Histogram {
				if n == 0 {
					continue
				}
				fmt.Fprintf(w, "  %02d:00 %s %d\n", hour, cli.Bar(float64(n)*100/float64(peak), 20), n)
			}
			fmt.Fprintln(w)
			for _, in := range result.Today {
				fmt.Fprintf(w, "  %s  %s %s\n", in.At.Format("15:04"), in.Reason, cli.LabelStyle.Render("("+cli.Ago(in.At)+")"))
			}
			return nil
		},
	}
}

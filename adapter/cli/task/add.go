package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
)

func newAddCmd() *cobra.Command {
	var (
		impact     int
		duration   int
		project    string
		confidence float64
		effort     float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task to the pool",
		Long: `Add a task with an impact rating (1-5) and an estimated duration.

Examples:
  focus task add "Write launch post" --impact 5 --duration 45 --project Marketing
  focus task add "Inbox zero" -i 2 -d 15`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			add := commands.AddTaskCommand{
				Name:     strings.Join(args, " "),
				Impact:   impact,
				Duration: duration,
				Project:  project,
			}
			if cmd.Flags().Changed("confidence") {
				add.Confidence = &confidence
			}
			if cmd.Flags().Changed("effort") {
				add.Effort = &effort
			}

			result, err := app.AddTaskHandler.Handle(cmd.Context(), add)
			if err != nil {
				return fmt.Errorf("failed to add task: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Task #%d added: %s\n", result.TaskID, add.Name)
			if impact == 0 || duration == 0 {
				fmt.Fprintln(w, cli.LabelStyle.Render(fmt.Sprintf("  defaults: impact %d, %s",
					app.Scoring.DefaultImpact, cli.Minutes(app.Scoring.DefaultBlockMinutes))))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&impact, "impact", "i", 0, "impact 1-5 (default from config)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "estimated minutes (default from config)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "project name")
	cmd.Flags().Float64Var(&confidence, "confidence", 1, "confidence in the impact estimate")
	cmd.Flags().Float64Var(&effort, "effort", 1, "relative effort")
	return cmd
}

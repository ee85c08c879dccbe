package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/queries"
)

func newListCmd() *cobra.Command {
	var (
		project string
		sortBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the task pool with its feedback so far.

Examples:
  focus task list
  focus task list --project Marketing
  focus task list --sort impact`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			tasks, err := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{Project: project, SortBy: sortBy})
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(w, "No tasks found.")
				return nil
			}

			fmt.Fprintln(w, cli.TitleStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
			for _, t := range tasks {
				feedback := "no feedback"
				if app.Recorder != nil {
					if c, err := app.Recorder.Counts(ctx, t.ID); err != nil {
						feedback = "feedback unavailable"
					} else if !c.IsEmpty() {
						feedback = fmt.Sprintf("%d yes / %d no", c.Yes, c.No)
					}
				}
				fmt.Fprintf(w, "#%-4d %-32s impact %d  %6s  %s\n",
					t.ID, t.Name, t.Impact, cli.Minutes(t.Duration), cli.BadgeStyle.Render("["+t.ProjectName()+"]"))
				fmt.Fprintln(w, cli.LabelStyle.Render(fmt.Sprintf("      %s, updated %s", feedback, cli.Ago(t.UpdatedAt))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "only tasks in this project")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "id", "sort by id, impact, duration or name")
	return cmd
}

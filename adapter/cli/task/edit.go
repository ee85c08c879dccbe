package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
)

func newEditCmd() *cobra.Command {
	var (
		name     string
		impact   int
		duration int
		project  string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task",
		Long: `Change any of a task's fields. Fields without a flag are left as they are.

Examples:
  focus task edit 3 --impact 5
  focus task edit 3 --name "Write launch post v2" --duration 60`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			update := commands.UpdateTaskCommand{TaskID: id}
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("impact") {
				update.Impact = &impact
			}
			if flags.Changed("duration") {
				update.Duration = &duration
			}
			if flags.Changed("project") {
				update.Project = &project
			}
			if update.Name == nil && update.Impact == nil && update.Duration == nil && update.Project == nil {
				return fmt.Errorf("nothing to change: pass --name, --impact, --duration or --project")
			}

			rec, err := app.UpdateTaskHandler.Handle(cmd.Context(), update)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d updated: %s (impact %d, %s, %s)\n",
				rec.ID, rec.Name, rec.Impact, cli.Minutes(rec.Duration), rec.ProjectName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().IntVarP(&impact, "impact", "i", 0, "new impact 1-5")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "new duration in minutes")
	cmd.Flags().StringVarP(&project, "project", "p", "", "new project (empty for General)")
	return cmd
}

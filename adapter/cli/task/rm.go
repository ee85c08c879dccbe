package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Remove a task with its feedback and sessions",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			result, err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id})
			if err != nil {
				return fmt.Errorf("failed to remove task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task #%d removed (%s)\n",
				id, cli.Plural(result.SessionsRemoved, "session", "sessions"))
			return nil
		},
	}
}

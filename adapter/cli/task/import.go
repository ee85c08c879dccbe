package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/application/commands"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/security"
)

const maxImportBytes = 8 << 20

func newImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge tasks from a JSON export",
		Long: `Merge tasks from a JSON file, either a bare array or {"tasks": [...]}.

Tasks match local ones by name and project, ignoring case. A match is
replaced only when the incoming task has a newer updated_at; otherwise it
is reported as a conflict and the local task is kept.

Examples:
  focus task import export.json --dry-run
  cat export.json | focus task import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.RequireApp()
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = security.ReadUserFile(args[0], maxImportBytes)
			}
			if err != nil {
				return fmt.Errorf("failed to read import: %w", err)
			}

			result, err := app.ImportTasksHandler.Handle(cmd.Context(), commands.ImportTasksCommand{Data: data, DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("failed to import tasks: %w", err)
			}

			w := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(w, cli.WarningStyle.Render("Dry run, nothing written"))
			}
			fmt.Fprintf(w, "Added %d, updated %d, skipped %d, conflicts %d\n",
				result.Added, result.Updated, result.Skipped, len(result.Conflicts))
			for _, c := range result.Conflicts {
				fmt.Fprintln(w, cli.LabelStyle.Render(fmt.Sprintf("  kept local #%d %s", c.Local.ID, c.Local.Name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}

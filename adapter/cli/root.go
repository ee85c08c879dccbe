// Package cli implements the focus command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "focus",
	Short: "focus - an 80/20 planner for the time you have",
	Long: `focus picks the few tasks most worth your next block of time.

Tell it how long you have and how much energy you bring; it ranks your
task pool by impact per minute, adjusted by what has actually moved the
needle before, and packs the best into your budget.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx := observability.WithCorrelationID(cmd.Context(), "")
		ctx = observability.WithOperation(ctx, cmd.CommandPath())
		cmd.SetContext(ctx)
		cmdStarted = time.Now()
		getLogger().DebugContext(ctx, "command start")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		getLogger().DebugContext(cmd.Context(), "command end",
			observability.DurationKey, time.Since(cmdStarted).Milliseconds(),
		)
	},
}

var cmdStarted time.Time

// ExecuteContext runs the root command and prints any error to stderr.
func ExecuteContext(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: "+err.Error()))
		return err
	}
	return nil
}

// AddCommand adds commands to the root command.
func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func init() {
	rootCmd.AddCommand(NewPlanCmd(), NewFeedbackCmd(), versionCmd)
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/planning/application/commands"
)

// NewFeedbackCmd creates the feedback command.
func NewFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <task-id> <yes|no>",
		Short: "Record whether a focus block moved the needle",
		Long: `Record the outcome of a focus block on a task and log it as a session
of the task's duration. Tasks that keep paying off rank higher next time.

Examples:
  focus feedback 3 yes
  focus feedback 7 n`,
		Aliases: []string{"fb", "done"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := RequireApp()
			if err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			result, err := app.PlanningService.CompleteBlock(cmd.Context(), commands.CompleteBlockCommand{
				TaskID:   id,
				Feedback: args[1],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			style := SuccessStyle
			if result.Answer != learning.AnswerYes {
				style = WarningStyle
			}
			fmt.Fprintf(w, "Recorded %s for %q\n", style.Render(result.Answer.String()), result.Task.Name)
			if total := result.Counts.Total(); total > 0 {
				fmt.Fprintln(w, LabelStyle.Render(fmt.Sprintf("  %s block: %d yes / %d no",
					Ordinal(total), result.Counts.Yes, result.Counts.No)))
			}
			if result.Session != nil {
				fmt.Fprintln(w, LabelStyle.Render(fmt.Sprintf("  logged %s session", Minutes(result.Session.Seconds/60))))
			}
			return nil
		},
	}
}

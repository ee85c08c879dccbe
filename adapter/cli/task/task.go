// Package task implements the task pool commands.
package task

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Cmd is the task command group
var Cmd = NewCmd()

// NewCmd creates the task command group.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the task pool",
		Long:  `Add, list, edit, remove and import the tasks focus plans from.`,
	}
	cmd.AddCommand(newAddCmd(), newListCmd(), newEditCmd(), newRemoveCmd(), newImportCmd())
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

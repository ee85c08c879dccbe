// Package insights implements the reporting commands: effectiveness,
// recommendations, the weekly Pareto view, streaks and interrupts.
package insights

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Commands returns the top-level insights commands.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		newStatsCmd(),
		newRecommendCmd(),
		newParetoCmd(),
		newStreaksCmd(),
		newInterruptCmd(),
		newInterruptsCmd(),
	}
}

// parseSince accepts a date (2006-01-02) or a day count such as "30d".
// An empty value means the whole history.
func parseSince(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return time.Time{}, fmt.Errorf("invalid --since %q: use a positive day count like 30d", value)
		}
		y, m, d := now.Date()
		return time.Date(y, m, d-(n-1), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: use YYYY-MM-DD or 30d", value)
	}
	return t, nil
}

package insights

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	internalApp "github.com/felixgeelhaar/paretofocus/internal/app"
	insightCommands "github.com/felixgeelhaar/paretofocus/internal/insights/application/commands"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

func setupTestApp(t *testing.T) *internalApp.Container {
	t.Helper()
	container := internalApp.NewInMemoryContainer(nil)
	cli.SetApp(cli.NewApp(container))
	t.Cleanup(func() { cli.SetApp(nil) })
	return container
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func logSession(t *testing.T, c *internalApp.Container, title, project string, minutes int, answer learning.Answer, at time.Time) {
	t.Helper()
	_, err := c.Insights.LogSession(context.Background(), insightCommands.LogSessionCommand{
		TaskID:          1,
		Project:         project,
		Title:           title,
		DurationMinutes: minutes,
		Feedback:        answer,
		At:              at,
	})
	require.NoError(t, err)
}

func TestStatsCmd(t *testing.T) {
	c := setupTestApp(t)
	now := time.Now()
	logSession(t, c, "Write", "Docs", 30, learning.AnswerYes, now)
	logSession(t, c, "Write", "Docs", 30, learning.AnswerYes, now)
	logSession(t, c, "Meetings", "Ops", 60, learning.AnswerNo, now)

	out, err := run(t, newStatsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Effectiveness (all time)")
	assert.Contains(t, out, "66.7% effective (2 of 3)")
	assert.Contains(t, out, "2h 00m focused")
	assert.Contains(t, out, "Streak: 1 day")
	assert.Contains(t, out, "Top projects")
	assert.Contains(t, out, "Docs")
}

func TestStatsCmd_NoSessions(t *testing.T) {
	setupTestApp(t)

	out, err := run(t, newStatsCmd(), "--since", "7d")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet.")
}

func TestStatsCmd_BadSince(t *testing.T) {
	setupTestApp(t)

	_, err := run(t, newStatsCmd(), "--since", "yesterday")
	assert.Error(t, err)
}

func TestRecommendCmd(t *testing.T) {
	c := setupTestApp(t)
	now := time.Now()

	out, err := run(t, newRecommendCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough feedback yet.")

	for i := 0; i < 3; i++ {
		logSession(t, c, "Write", "Docs", 25, learning.AnswerYes, now)
		logSession(t, c, "Sync", "Ops", 25, learning.AnswerNo, now)
	}

	out, err = run(t, newRecommendCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Try more of")
	assert.Contains(t, out, "Review")
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, "Ops")
}

func TestParetoCmd(t *testing.T) {
	c := setupTestApp(t)
	now := time.Now()

	out, err := run(t, newParetoCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions in the last 7 days.")

	logSession(t, c, "Deep work", "", 240, learning.AnswerYes, now)
	logSession(t, c, "Email", "", 30, "", now)

	out, err = run(t, newParetoCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Last 7 days: 4h 30m")
	assert.Contains(t, out, "* Deep work")
	assert.Contains(t, out, "1 item of 2 make up 80% of your time")
}

func TestStreaksCmd(t *testing.T) {
	setupTestApp(t)

	out, err := run(t, newStreaksCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Current streak: 0 days")
	assert.Contains(t, out, "start a new streak")
}

func TestInterruptCmds(t *testing.T) {
	setupTestApp(t)

	out, err := run(t, newInterruptsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No interrupts today.")

	out, err = run(t, newInterruptCmd(), "Slack", "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "Slack ping")

	_, err = run(t, newInterruptCmd())
	require.NoError(t, err)

	out, err = run(t, newInterruptsCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Interrupts today: 2")
	assert.Contains(t, out, "Slack ping")
	assert.Contains(t, out, "Interrupt")
}

func TestParseSince(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Time{}},
		{in: "2025-01-02", want: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{in: "1d", want: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{in: "7d", want: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)},
		{in: "0d", wantErr: true},
		{in: "xd", wantErr: true},
		{in: "June", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSince(tt.in, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

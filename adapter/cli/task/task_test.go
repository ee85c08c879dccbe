package task

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/paretofocus/adapter/cli"
	internalApp "github.com/felixgeelhaar/paretofocus/internal/app"
	planningCommands "github.com/felixgeelhaar/paretofocus/internal/planning/application/commands"
	insights "github.com/felixgeelhaar/paretofocus/internal/insights/application/queries"
)

// setupTestApp wires the CLI to an in-memory container.
func setupTestApp(t *testing.T) *internalApp.Container {
	t.Helper()
	container := internalApp.NewInMemoryContainer(nil)
	cli.SetApp(cli.NewApp(container))
	t.Cleanup(func() { cli.SetApp(nil) })
	return container
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddAndList(t *testing.T) {
	setupTestApp(t)

	out, err := run(t, "", "add", "Write", "launch", "post", "--impact", "5", "--duration", "45", "--project", "Marketing")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1 added: Write launch post")

	out, err = run(t, "", "add", "Inbox zero")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults: impact 3, 25m")

	out, err = run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks (2)")
	assert.Contains(t, out, "Write launch post")
	assert.Contains(t, out, "[Marketing]")
	assert.Contains(t, out, "[General]")
	assert.Contains(t, out, "no feedback")

	out, err = run(t, "", "list", "--project", "marketing")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks (1)")
}

func TestAdd_Invalid(t *testing.T) {
	setupTestApp(t)

	_, err := run(t, "", "add", "Too big", "--impact", "9")
	assert.Error(t, err)

	_, err = run(t, "", "add")
	assert.Error(t, err)
}

func TestList_Empty(t *testing.T) {
	setupTestApp(t)

	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")
}

func TestEdit(t *testing.T) {
	c := setupTestApp(t)
	_, err := run(t, "", "add", "Draft", "-i", "2", "-d", "20")
	require.NoError(t, err)

	out, err := run(t, "", "edit", "1", "--impact", "4", "--project", "Writing")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1 updated: Draft (impact 4, 20m, Writing)")

	rec, err := c.GetTaskHandler.Handle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Impact)

	_, err = run(t, "", "edit", "1")
	assert.ErrorContains(t, err, "nothing to change")

	_, err = run(t, "", "edit", "7", "--impact", "4")
	assert.Error(t, err)
}

func TestRemove_ClearsHistory(t *testing.T) {
	c := setupTestApp(t)
	ctx := context.Background()
	_, err := run(t, "", "add", "Deploy", "-p", "Ops")
	require.NoError(t, err)

	_, err = c.Planning.CompleteBlock(ctx, planningCommands.CompleteBlockCommand{TaskID: 1, Feedback: "yes"})
	require.NoError(t, err)

	out, err := run(t, "", "rm", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Task #1 removed (1 session)")

	counts, err := c.Recorder.Counts(ctx, 1)
	require.NoError(t, err)
	assert.True(t, counts.IsEmpty())

	stats, err := c.Insights.GetStats(ctx, insights.GetStatsQuery{})
	require.NoError(t, err)
	assert.Zero(t, stats.Overall.Total)

	_, err = run(t, "", "rm", "abc")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	setupTestApp(t)
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"Plan sprint","project":"Eng","duration":40},{"name":""}]`), 0o600))

	out, err := run(t, "", "import", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run, nothing written")
	assert.Contains(t, out, "Added 1, updated 0, skipped 1, conflicts 0")

	out, err = run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found.")

	_, err = run(t, "", "import", path)
	require.NoError(t, err)

	out, err = run(t, `{"tasks":[{"title":"plan sprint","project":"eng"}]}`, "import", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "conflicts 1")
	assert.Contains(t, out, "kept local #1 Plan sprint")
}

func TestImport_MissingFile(t *testing.T) {
	setupTestApp(t)

	_, err := run(t, "", "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read import")
}

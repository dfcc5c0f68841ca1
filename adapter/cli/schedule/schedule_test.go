package schedule

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/slotwise/adapter/cli"
	internalApp "github.com/felixgeelhaar/slotwise/internal/app"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/commands"
	"github.com/felixgeelhaar/slotwise/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/slotwise/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLocalModeTestApp creates a test application with SQLite for integration tests.
func setupLocalModeTestApp(t *testing.T) *cli.App {
	t.Helper()

	cfg := &config.Config{
		AppEnv:      "test",
		UserID:      config.DefaultUserID,
		SQLitePath:  filepath.Join(t.TempDir(), "test.db"),
		LLMFallback: true,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := internalApp.NewContainer(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(container.Close)

	app := cli.NewApp(container)
	cli.SetApp(app)
	t.Cleanup(func() { cli.SetApp(nil) })
	return app
}

// run executes a command's RunE and returns what it printed.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	t.Cleanup(func() { cmd.SetOut(nil) })

	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func TestCommands_RequireApp(t *testing.T) {
	cli.SetApp(nil)

	_, err := run(t, showCmd)

	assert.ErrorIs(t, err, errAppNotInitialized)
}

func TestShowCmd_BuiltInTemplate(t *testing.T) {
	setupLocalModeTestApp(t)

	out, err := run(t, showCmd)

	require.NoError(t, err)
	assert.Contains(t, out, "built-in template")
	assert.Contains(t, out, "10:00-14:00")
	assert.Contains(t, out, "Marktiz")
}

func TestSmartCmd_KeywordMatch(t *testing.T) {
	setupLocalModeTestApp(t)

	out, err := run(t, smartCmd, "Deploy", "new", "API")

	require.NoError(t, err)
	assert.Contains(t, out, "Marktiz  10:00-14:00")
	assert.Contains(t, out, "method:     keyword")
	assert.Contains(t, out, "keyword:    deploy")
}

func TestSmartCmd_Unresolved(t *testing.T) {
	setupLocalModeTestApp(t)

	out, err := run(t, smartCmd, "Buy groceries")

	require.NoError(t, err)
	assert.Contains(t, out, "Could not automatically classify task.")
	assert.Contains(t, out, "Available categories: Marktiz, Bug Bounty, Gymlingoo, Break, Sleep")
}

func TestAtCmd(t *testing.T) {
	setupLocalModeTestApp(t)

	out, err := run(t, atCmd, "23:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Gymlingoo  22:30-00:30")

	_, err = run(t, atCmd, "25:00")
	assert.Error(t, err)
}

func TestNextCmd(t *testing.T) {
	setupLocalModeTestApp(t)
	nextAfter = "17:00"
	t.Cleanup(func() { nextAfter = "" })

	out, err := run(t, nextCmd, "Gymlingoo")
	require.NoError(t, err)
	assert.Contains(t, out, "22:30-00:30")

	nextAfter = ""
	out, err = run(t, nextCmd, "Knitting")
	require.NoError(t, err)
	assert.Contains(t, out, `No slot for category "Knitting"`)
}

func TestCategoriesCmd(t *testing.T) {
	setupLocalModeTestApp(t)

	out, err := run(t, categoriesCmd)

	require.NoError(t, err)
	assert.Equal(t, "Marktiz\nBug Bounty\nGymlingoo\nBreak\nSleep\n", out)
}

func TestSlotCmd_RequiresStoredSchedule(t *testing.T) {
	setupLocalModeTestApp(t)

	_, err := run(t, slotDeleteCmd, "0")

	assert.ErrorIs(t, err, commands.ErrNoDefaultSchedule)
}

func TestInitAndSlotEdits(t *testing.T) {
	app := setupLocalModeTestApp(t)
	ctx := context.Background()

	out, err := run(t, initCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "8 slots")

	out, err = run(t, slotDeleteCmd, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Slot deleted, schedule now has 7 slots")

	_, err = run(t, slotDeleteCmd, "42")
	assert.Error(t, err)

	schedule, err := app.GetScheduleHandler.Handle(ctx, queries.GetScheduleQuery{UserID: app.CurrentUserID})
	require.NoError(t, err)
	assert.False(t, schedule.IsTemporary)
	assert.Equal(t, "Bug Bounty", schedule.Slots[0].Category)

	out, err = run(t, resetCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "8 slots")
}

func TestExportImportRoundTrip(t *testing.T) {
	setupLocalModeTestApp(t)
	path := filepath.Join(t.TempDir(), "week.toml")
	exportOutput = path
	t.Cleanup(func() { exportOutput = "" })

	out, err := run(t, exportCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 8 slots")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[slots]]")

	importName = "Copy"
	t.Cleanup(func() { importName = "" })
	out, err = run(t, importCmd, path)
	require.NoError(t, err)
	assert.Contains(t, out, `Created schedule "Copy" with 8 slots`)
}

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// isolate points config, data and logs at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, key := range []string{
		"KANBAN_CONFIG", "KANBAN_THEME_FILE", "KANBAN_STORAGE", "KANBAN_DATA_DIR",
		"KANBAN_STORAGE_KEY", "KANBAN_REDIS_ADDR", "KANBAN_REDIS_PREFIX",
		"KANBAN_LOG_LEVEL", "KANBAN_LOG_DIR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, strings.NewReader(""), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_EphemeralCreate(t *testing.T) {
	isolate(t)

	res := runCLI(t, context.Background(), "--ephemeral", "board", "create", "--title", "Sprint 1", "--json")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	out := testutil.ParseJSON(t, res.stdout)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Sprint 1", out["board"].(map[string]any)["title"])
}

func TestRun_FileBackendPersistsAcrossRuns(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	ctx := context.Background()

	res := runCLI(t, ctx, "--storage", "file", "--data-dir", dataDir, "board", "create", "--title", "Roadmap", "--quiet")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	boardID := strings.TrimSpace(res.stdout)
	require.NotEmpty(t, boardID)

	res = runCLI(t, ctx, "--storage", "file", "--data-dir", dataDir, "column", "create", "--board", boardID, "--title", "To Do", "--quiet")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	res = runCLI(t, ctx, "--storage", "file", "--data-dir", dataDir, "board", "list", "--json")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	boards := testutil.ParseJSON(t, res.stdout)["boards"].([]any)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].(map[string]any)["title"])
	assert.EqualValues(t, 1, boards[0].(map[string]any)["columns"])

	assert.FileExists(t, filepath.Join(dataDir, "kanban-storage.json"))
	assert.FileExists(t, filepath.Join(dataDir, "logs", "kanban.log"))
}

func TestRun_SQLiteIsDefault(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()

	res := runCLI(t, context.Background(), "--data-dir", dataDir, "board", "create", "--title", "Sprint")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dataDir, "kanban.db"))
}

func TestRun_UnknownBackend(t *testing.T) {
	isolate(t)

	res := runCLI(t, context.Background(), "--storage", "floppy", "board", "list")
	assert.Equal(t, cli.ExitUsage, res.code)
	assert.Contains(t, res.stderr, "unknown storage backend")
}

func TestRun_ThemeFlag(t *testing.T) {
	isolate(t)

	res := runCLI(t, context.Background(), "--ephemeral", "--theme", "monochrome", "board", "list")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Equal(t, lipgloss.Color(config.MonochromeColorScheme().Title), styles.TitleStyle.GetForeground())

	res = runCLI(t, context.Background(), "--ephemeral", "--theme", "neon", "board", "list")
	assert.Equal(t, cli.ExitUsage, res.code)
	assert.Contains(t, res.stderr, "unknown theme")
}

func TestRun_UsageErrors(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"--ephemeral", "board", "create", "--nope"},
		{"--ephemeral", "frobnicate"},
		{"--ephemeral", "board", "rename"},
	} {
		res := runCLI(t, context.Background(), args...)
		assert.Equal(t, cli.ExitUsage, res.code, args)
		assert.Contains(t, res.stderr, "Error:", args)
	}
}

func TestRun_NotFound(t *testing.T) {
	isolate(t)

	res := runCLI(t, context.Background(), "--ephemeral", "board", "show", "missing", "--json")
	assert.Equal(t, cli.ExitNotFound, res.code)

	out := testutil.ParseJSON(t, res.stdout)
	assert.Equal(t, false, out["success"])
}

func TestRun_UsesAttachedApp(t *testing.T) {
	isolate(t)
	testApp, _ := testutil.SetupTestApp(t)
	testutil.CreateTestBoard(t, testApp.Store, "Injected")

	ctx := cli.WithCLI(context.Background(), &cli.CLI{App: testApp})
	res := runCLI(t, ctx, "board", "list")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Injected")
}

func TestRun_BrokenConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))
	t.Setenv("KANBAN_CONFIG", path)

	res := runCLI(t, context.Background(), "board", "list")
	assert.Equal(t, cli.ExitError, res.code)
	assert.Contains(t, res.stderr, "Error")
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	ctx := context.Background()

	res := runCLI(t, ctx, "config", "path")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	path := strings.TrimSpace(res.stdout)
	assert.Equal(t, filepath.Join(dir, "config", "kanban", "config.yaml"), path)

	res = runCLI(t, ctx, "config", "init")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.FileExists(t, path)

	res = runCLI(t, ctx, "config", "init")
	assert.Equal(t, cli.ExitValidation, res.code)

	res = runCLI(t, ctx, "config", "init", "--force", "--json")
	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Equal(t, path, testutil.ParseJSON(t, res.stdout)["path"])

	// config commands never open storage
	assert.NoFileExists(t, filepath.Join(dir, ".kanban", "kanban.db"))
}

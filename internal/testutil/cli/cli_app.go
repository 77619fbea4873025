// Package cli runs cobra commands against a test App. It lives apart from
// testutil so that store and storage tests don't pull in cobra.
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// Result is the captured outcome of a command
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode is the process exit code the command would produce
func (r Result) ExitCode() int {
	return cli.ExitCode(r.Err)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is attached to the context the same way the root command does it.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupTestApp must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := cli.WithCLI(context.Background(), &cli.CLI{App: testApp})
	err := cmd.ExecuteContext(ctx)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

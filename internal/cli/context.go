package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/store"
)

// CLI is what every command needs to do its work
type CLI struct {
	App *app.App
}

type contextKey struct{}

// ErrNoCLI is returned when a command runs without an initialized App
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI attaches c to ctx. The root command does this in PersistentPreRunE;
// tests do it directly with an App over in-memory storage.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI attached by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil || c.App == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

// Setup returns the CLI and an output formatter for cmd. A missing CLI is
// reported through the formatter as a general error.
func Setup(cmd *cobra.Command) (*CLI, *OutputFormatter, error) {
	f := NewFormatter(cmd)
	c, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, f, f.Fail(ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	return c, f, nil
}

// Store is shorthand for c.App.Store
func (c *CLI) Store() *store.Store {
	return c.App.Store
}

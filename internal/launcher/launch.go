// Package launcher runs the board view as a full-screen program.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/tui"
)

// Launch starts the TUI over a and blocks until the user quits or the
// process is signalled. Any drag left open is cleared on the way out.
func Launch(ctx context.Context, a *app.App, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.InitialModel(ctx, a, a.Config)
	defer model.Close()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	var err error
	select {
	case err = <-errChan:
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		p.Quit()
		err = <-errChan
	}
	if ctx.Err() != nil {
		// interrupted on purpose, not a failure
		err = nil
	}

	if a.Store.DraggedCard() != nil {
		a.Store.SetDraggedCard(nil)
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

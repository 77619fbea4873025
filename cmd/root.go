// Package cmd assembles the kanban command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/card"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/cli/transfer"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// skipApp marks commands that must not open storage
const skipApp = "kanban/skip-app"

var backends = []string{storage.BackendSQLite, storage.BackendFile, storage.BackendRedis, storage.BackendMemory}

// globalFlags are shared by every command
type globalFlags struct {
	storage   string
	dataDir   string
	ephemeral bool
	theme     string
}

// session owns whatever PersistentPreRunE opened
type session struct {
	app *app.App
	log io.Closer
}

func (s *session) close() {
	if s.app != nil {
		if err := s.app.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
		s.app = nil
	}
	if s.log != nil {
		_ = s.log.Close()
		s.log = nil
	}
}

// newRootCmd builds a fresh command tree. An App already attached to the
// context with cli.WithCLI is used as is.
func newRootCmd() (*cobra.Command, *session) {
	var flags globalFlags
	sess := &session{}

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "kanban - a terminal kanban board",
		Long: `kanban keeps boards of columns and cards on this machine.

Run without a command to open the board view, or use the board, column
and card commands to script it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipApp] != "" {
				return nil
			}
			if _, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
				return nil
			}
			return sess.open(cmd, flags)
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.storage, "storage", "", "storage backend: "+strings.Join(backends, ", "))
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory for the database, board files and logs")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep boards in memory only")
	pf.StringVar(&flags.theme, "theme", "", "color preset, overriding the config file: "+strings.Join(config.ThemePresets, ", "))

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(transfer.ExportCmd())
	rootCmd.AddCommand(transfer.ImportCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd, sess
}

// open loads config, applies the global flags and opens the App
func (s *session) open(cmd *cobra.Command, flags globalFlags) error {
	f := cli.NewFormatter(cmd)

	cfg, err := config.Load()
	if err != nil {
		return f.FailWithSuggestion(cli.ExitError, "CONFIG_ERROR", err.Error(), "check the config file or remove it to use defaults")
	}

	if flags.storage != "" {
		backend := strings.ToLower(flags.storage)
		if !slices.Contains(backends, backend) {
			return f.FailWithSuggestion(cli.ExitUsage, "INVALID_FLAG",
				fmt.Sprintf("unknown storage backend %q", flags.storage),
				"use one of: "+strings.Join(backends, ", "))
		}
		cfg.Storage.Backend = backend
	}
	if flags.dataDir != "" {
		if cfg.Log.Dir == cfg.Storage.DataDir {
			cfg.Log.Dir = flags.dataDir
		}
		cfg.Storage.DataDir = flags.dataDir
	}
	if flags.ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}
	if flags.theme != "" {
		scheme, ok := config.ColorSchemePreset(strings.ToLower(flags.theme))
		if !ok {
			return f.FailWithSuggestion(cli.ExitUsage, "INVALID_FLAG",
				fmt.Sprintf("unknown theme %q", flags.theme),
				"use one of: "+strings.Join(config.ThemePresets, ", "))
		}
		cfg.ColorScheme = scheme
	}

	// memory-only runs leave nothing on disk, logs included
	if cfg.Storage.Backend == storage.BackendMemory {
		logging.Discard()
	} else if s.log, err = logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		logging.Discard()
	}

	styles.Init(cfg.ColorScheme)

	a, err := app.New(cmd.Context(), cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return f.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	s.app = a

	cmd.SetContext(cli.WithCLI(cmd.Context(), &cli.CLI{App: a}))
	return nil
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the board view",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	c, f, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	if err := launcher.Launch(cmd.Context(), c.App); err != nil {
		return f.Fail(cli.ExitError, "TUI_ERROR", err.Error())
	}
	return nil
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd, sess := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	sess.close()

	// anything the formatter didn't print came from cobra's own parsing
	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		fmt.Fprintf(errOut, "Run '%s --help' for usage.\n", rootCmd.Name())
		return cli.ExitUsage
	}
	return cli.ExitCode(err)
}

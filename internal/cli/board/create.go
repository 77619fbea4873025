package board

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new, empty board.

Examples:
  # Human-readable output
  kanban board create --title="Sprint 1"

  # JSON output for agents
  kanban board create --title="Sprint 1" --json

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create --title="Sprint 1" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Board title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	rawTitle, _ := cmd.Flags().GetString("title")
	title, err := formatter.RequireTitle(rawTitle)
	if err != nil {
		return err
	}

	board, ok := c.Store().AddBoard(title)
	if !ok {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", "title must not be empty")
	}
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(board.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"board": board})
	}

	formatter.Printf("✓ Board '%s' created successfully (ID: %s)\n", board.Title, board.ID)
	return nil
}

package column

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column at the right end of a board.

Examples:
  # Human-readable output
  kanban column create --board="Sprint 1" --title="Review"

  # JSON output for agents
  kanban column create --board="Sprint 1" --title="Review" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column create --board="$BOARD_ID" --title="Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	addBoardFlag(cmd)
	cmd.Flags().String("title", "", "Column title (required)")
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

	board, _, err := resolve(cmd, c, formatter, "")
	if err != nil {
		return err
	}

	column, ok := c.Store().AddColumnToBoard(board.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND", "board was deleted")
	}
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(column.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"column": map[string]any{
				"id":       column.ID,
				"title":    column.Title,
				"board_id": board.ID,
			},
		})
	}

	formatter.Printf("✓ Column '%s' created successfully (ID: %s)\n", column.Title, column.ID)
	formatter.Printf("  Board: %s\n", board.Title)
	return nil
}

package card

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a new card at the bottom of a column.

Examples:
  # Human-readable output
  kanban card create --board="Sprint 1" --column="To Do" --title="Task A"

  # JSON output for agents
  kanban card create --board="Sprint 1" --column="To Do" --title="Task A" --json

  # Quiet mode for bash capture
  CARD_ID=$(kanban card create --board="$BOARD_ID" --column="$COLUMN_ID" --title="Task A" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	requiredString(cmd, "board", "Board id, id prefix or title (required)")
	requiredString(cmd, "column", "Column id, id prefix or title (required)")
	requiredString(cmd, "title", "Card title (required)")
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

	loc, err := resolve(cmd, c, formatter, "column", "")
	if err != nil {
		return err
	}

	card, ok := c.Store().AddCardToColumn(loc.board.ID, loc.column.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", "column was deleted")
	}
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(card.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"card": cardJSON(card, loc)})
	}

	formatter.Printf("✓ Card '%s' created successfully (ID: %s)\n", card.Title, card.ID)
	formatter.Printf("  Board: %s\n", loc.board.Title)
	formatter.Printf("  Column: %s\n", loc.column.Title)
	return nil
}

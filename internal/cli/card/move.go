package card

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to the bottom of another column",
		Long: `Move a card the same way the board does on drag and drop: the card is
picked up from its column and dropped at the bottom of the target column.
Moving a card onto its own column sends it to the bottom.

Examples:
  kanban card move --board="Sprint 1" --from="To Do" --to="Done" --card="Task A"
  kanban card move --board="$BOARD_ID" --from="$FROM" --to="$TO" --card="$CARD_ID" --json
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	requiredString(cmd, "board", "Board id, id prefix or title (required)")
	requiredString(cmd, "from", "Source column id, id prefix or title (required)")
	requiredString(cmd, "to", "Target column id, id prefix or title (required)")
	requiredString(cmd, "card", "Card id, id prefix or title (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	cardRef, _ := cmd.Flags().GetString("card")
	loc, err := resolve(cmd, c, formatter, "from", cardRef)
	if err != nil {
		return err
	}

	toRef, _ := cmd.Flags().GetString("to")
	target, err := cli.ResolveColumn(loc.board, toRef)
	if err != nil {
		return formatter.ResolveFailure("column", toRef, err)
	}

	s := c.Store()
	s.SetDraggedCard(&models.DraggedCard{CardID: loc.card.ID, FromColumnID: loc.column.ID})
	if !s.MoveCardToColumn(loc.board.ID, target.ID) {
		s.SetDraggedCard(nil)
		return formatter.Fail(cli.ExitNotFound, "CARD_NOT_FOUND", "card is no longer in its column")
	}
	if err := formatter.CheckPersist(s); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(loc.card.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"card": map[string]any{
				"id":             loc.card.ID,
				"title":          loc.card.Title,
				"board_id":       loc.board.ID,
				"from_column_id": loc.column.ID,
				"to_column_id":   target.ID,
			},
		})
	}

	formatter.Printf("✓ Card '%s' moved from '%s' to '%s'\n", loc.card.Title, loc.column.Title, target.Title)
	return nil
}

package card

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete CARD",
		Short: "Delete a card",
		Long: `Delete a card. CARD is an id, a unique id prefix, or the card title.

Examples:
  kanban card delete "Task A" --board="Sprint 1" --column="To Do"
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	requiredString(cmd, "board", "Board id, id prefix or title (required)")
	requiredString(cmd, "column", "Column id, id prefix or title (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	loc, err := resolve(cmd, c, formatter, "column", args[0])
	if err != nil {
		return err
	}

	c.Store().DeleteCard(loc.board.ID, loc.column.ID, loc.card.ID)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(loc.card.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"deleted": cardJSON(loc.card, loc)})
	}

	formatter.Printf("✓ Card '%s' deleted from '%s'\n", loc.card.Title, loc.column.Title)
	return nil
}

package card

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// RenameCmd returns the card rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename CARD",
		Short: "Rename a card",
		Long: `Rename a card. CARD is an id, a unique id prefix, or the card title.

Examples:
  kanban card rename "Task A" --board="Sprint 1" --column="To Do" --title="Task A (v2)"
`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	requiredString(cmd, "board", "Board id, id prefix or title (required)")
	requiredString(cmd, "column", "Column id, id prefix or title (required)")
	requiredString(cmd, "title", "New card title (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	rawTitle, _ := cmd.Flags().GetString("title")
	title, err := formatter.RequireTitle(rawTitle)
	if err != nil {
		return err
	}

	loc, err := resolve(cmd, c, formatter, "column", args[0])
	if err != nil {
		return err
	}

	c.Store().UpdateCardTitle(loc.board.ID, loc.column.ID, loc.card.ID, title)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	renamed := loc.card
	renamed.Title = title

	if formatter.Quiet {
		return formatter.ID(renamed.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"card": cardJSON(renamed, loc)})
	}

	formatter.Printf("✓ Card '%s' renamed to '%s'\n", loc.card.Title, title)
	return nil
}

package card

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
		Long:  "Create, rename, delete and move the cards of a board.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

func requiredString(cmd *cobra.Command, name, usage string) {
	cmd.Flags().String(name, "", usage)
	if err := cmd.MarkFlagRequired(name); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// location is a resolved board and column, plus the card when one was asked for
type location struct {
	board  models.Board
	column models.Column
	card   models.Card
}

// resolve looks up --board, then the column named by the columnFlag flag,
// then cardRef inside that column when cardRef is non-empty.
func resolve(cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter, columnFlag, cardRef string) (location, error) {
	var loc location

	boardRef, _ := cmd.Flags().GetString("board")
	board, err := cli.ResolveBoard(c.Store(), boardRef)
	if err != nil {
		return loc, f.ResolveFailure("board", boardRef, err)
	}
	loc.board = board

	columnRef, _ := cmd.Flags().GetString(columnFlag)
	column, err := cli.ResolveColumn(board, columnRef)
	if err != nil {
		return loc, f.ResolveFailure("column", columnRef, err)
	}
	loc.column = column

	if cardRef == "" {
		return loc, nil
	}
	card, err := cli.ResolveCard(column, cardRef)
	if err != nil {
		return loc, f.ResolveFailure("card", cardRef, err)
	}
	loc.card = card
	return loc, nil
}

func cardJSON(card models.Card, loc location) map[string]any {
	return map[string]any{
		"id":        card.ID,
		"title":     card.Title,
		"column_id": loc.column.ID,
		"board_id":  loc.board.ID,
	}
}

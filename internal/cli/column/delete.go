package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete COLUMN",
		Short: "Delete a column and its cards",
		Long: `Delete a column. COLUMN is an id, a unique id prefix, or the column title.
All cards in the column are deleted with it.

Examples:
  kanban column delete "Done" --board="Sprint 1"
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	board, column, err := resolve(cmd, c, formatter, args[0])
	if err != nil {
		return err
	}

	c.Store().DeleteColumn(board.ID, column.ID)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(column.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"deleted": map[string]any{
				"id":       column.ID,
				"title":    column.Title,
				"board_id": board.ID,
				"cards":    len(column.Cards),
			},
		})
	}

	formatter.Printf("✓ Column '%s' deleted from '%s' (%d cards removed)\n", column.Title, board.Title, len(column.Cards))
	return nil
}

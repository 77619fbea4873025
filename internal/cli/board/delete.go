package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete BOARD",
		Short: "Delete a board with all of its columns and cards",
		Long: `Delete a board. BOARD is an id, a unique id prefix, or the board title.
Its columns and cards are deleted with it.

Examples:
  kanban board delete "Sprint 1"
  kanban board delete 3f2a --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	board, err := cli.ResolveBoard(c.Store(), args[0])
	if err != nil {
		return formatter.ResolveFailure("board", args[0], err)
	}

	c.Store().DeleteBoard(board.ID)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(board.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"deleted": map[string]any{
				"id":      board.ID,
				"title":   board.Title,
				"columns": len(board.Columns),
				"cards":   board.CardCount(),
			},
		})
	}

	formatter.Printf("✓ Board '%s' deleted (%s, %s)\n", board.Title,
		pluralize(len(board.Columns), "column"), pluralize(board.CardCount(), "card"))
	return nil
}

package column

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
		Long:  "Create, rename and delete the columns of a board.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board id, id prefix or title (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
}

// resolve looks up the --board flag and, when ref is non-empty, a column of it
func resolve(cmd *cobra.Command, c *cli.CLI, f *cli.OutputFormatter, ref string) (models.Board, models.Column, error) {
	boardRef, _ := cmd.Flags().GetString("board")
	board, err := cli.ResolveBoard(c.Store(), boardRef)
	if err != nil {
		return models.Board{}, models.Column{}, f.ResolveFailure("board", boardRef, err)
	}
	if ref == "" {
		return board, models.Column{}, nil
	}
	col, err := cli.ResolveColumn(board, ref)
	if err != nil {
		return board, models.Column{}, f.ResolveFailure("column", ref, err)
	}
	return board, col, nil
}

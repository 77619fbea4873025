package column

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename COLUMN",
		Short: "Rename a column",
		Long: `Rename a column. COLUMN is an id, a unique id prefix, or the column title.

Examples:
  kanban column rename "To Do" --board="Sprint 1" --title="Backlog"
`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	addBoardFlag(cmd)
	cmd.Flags().String("title", "", "New column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

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

	board, column, err := resolve(cmd, c, formatter, args[0])
	if err != nil {
		return err
	}

	c.Store().UpdateColumnTitle(board.ID, column.ID, title)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(column.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"column": map[string]any{"id": column.ID, "title": title, "board_id": board.ID},
		})
	}

	formatter.Printf("✓ Column '%s' renamed to '%s'\n", column.Title, title)
	return nil
}

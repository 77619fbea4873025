package board

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename BOARD",
		Short: "Rename a board",
		Long: `Rename a board. BOARD is an id, a unique id prefix, or the board title.

Examples:
  kanban board rename "Sprint 1" --title="Sprint 2"
`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
	}

	cmd.Flags().String("title", "", "New board title (required)")
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

	board, err := cli.ResolveBoard(c.Store(), args[0])
	if err != nil {
		return formatter.ResolveFailure("board", args[0], err)
	}

	c.Store().UpdateBoardTitle(board.ID, title)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		return formatter.ID(board.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"board": map[string]any{"id": board.ID, "title": title},
		})
	}

	formatter.Printf("✓ Board '%s' renamed to '%s'\n", board.Title, title)
	return nil
}

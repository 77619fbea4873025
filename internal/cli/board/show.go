package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/render"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show BOARD",
		Short: "Show a board with its columns and cards",
		Long: `Show a board. BOARD is an id, a unique id prefix, or the board title.

Examples:
  kanban board show "Sprint 1"
  kanban board show 3f2a --json

  # Render as markdown through glamour
  kanban board show "Sprint 1" --markdown

  # Raw markdown, e.g. for a README
  kanban board show "Sprint 1" --markdown --raw > board.md
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("markdown", false, "Render the board as markdown")
	cmd.Flags().Bool("raw", false, "With --markdown, print the markdown source")
	cmd.Flags().Int("width", render.DefaultWidth, "Wrap width for rendered markdown")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	board, err := cli.ResolveBoard(c.Store(), args[0])
	if err != nil {
		return formatter.ResolveFailure("board", args[0], err)
	}

	if formatter.Quiet {
		return formatter.ID(board.ID.String())
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"board": board})
	}

	markdown, _ := cmd.Flags().GetBool("markdown")
	if !markdown {
		formatter.Printf("%s\n", styles.RenderBoard(board))
		return nil
	}

	md := render.BoardMarkdown(board)
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		formatter.Printf("%s", md)
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	formatter.Printf("%s\n", render.Terminal(md, width))
	return nil
}

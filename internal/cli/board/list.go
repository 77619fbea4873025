package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards in display order.

Examples:
  kanban board list
  kanban board list --json
  kanban board list --quiet   # one id per line
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

type boardSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Columns int    `json:"columns"`
	Cards   int    `json:"cards"`
}

func runList(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	boards := c.Store().Boards()

	if formatter.Quiet {
		for _, b := range boards {
			if err := formatter.ID(b.ID.String()); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		summaries := make([]boardSummary, 0, len(boards))
		for _, b := range boards {
			summaries = append(summaries, boardSummary{
				ID:      b.ID.String(),
				Title:   b.Title,
				Columns: len(b.Columns),
				Cards:   b.CardCount(),
			})
		}
		return formatter.Success(map[string]any{"boards": summaries})
	}

	if len(boards) == 0 {
		formatter.Printf("No boards found\n")
		return nil
	}

	formatter.Printf("Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		formatter.Printf("  %s  %s %s\n",
			styles.SubtitleStyle.Render(b.ID.String()),
			styles.TitleStyle.Render(b.Title),
			styles.SubtitleStyle.Render(pluralize(len(b.Columns), "column")+", "+pluralize(b.CardCount(), "card")))
	}
	return nil
}

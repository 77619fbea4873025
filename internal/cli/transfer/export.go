package transfer

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export boards as a snapshot",
		Long: `Write all boards (or one, with --board) as a {"boards": [...]} snapshot.
Without --output the snapshot goes to stdout.

Examples:
  kanban export > boards.json
  kanban export --format=yaml --output=boards.yaml
  kanban export --board="Sprint 1" --output=sprint.json --json
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("format", "", "Snapshot format: json or yaml (default: from --output extension, else json)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().String("board", "", "Export only this board (id, id prefix or title)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := detectFormat(formatFlag, output)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_FORMAT", err.Error())
	}

	boards := c.Store().Boards()
	if boardRef, _ := cmd.Flags().GetString("board"); boardRef != "" {
		board, err := cli.ResolveBoard(c.Store(), boardRef)
		if err != nil {
			return formatter.ResolveFailure("board", boardRef, err)
		}
		boards = []models.Board{board}
	}

	data, err := encode(format, boards)
	if err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", err.Error())
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return formatter.Fail(cli.ExitError, "EXPORT_ERROR", fmt.Sprintf("failed to write %s: %v", output, err))
	}

	if formatter.Quiet {
		return formatter.ID(output)
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"exported": map[string]any{
				"path":   output,
				"format": format,
				"boards": len(boards),
			},
		})
	}

	formatter.Printf("✓ Exported %d boards to %s\n", len(boards), output)
	return nil
}

package transfer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all boards with a snapshot",
		Long: `Replace every board with the contents of a snapshot written by export.
FILE may be "-" to read stdin. The snapshot is validated first; on any error
the current boards are left untouched.

Examples:
  kanban import boards.json
  kanban import --format=yaml - < boards.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("format", "", "Snapshot format: json or yaml (default: from file extension, else json)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := detectFormat(formatFlag, path)
	if err != nil {
		return formatter.Fail(cli.ExitUsage, "INVALID_FORMAT", err.Error())
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return formatter.Fail(cli.ExitError, "IMPORT_ERROR", fmt.Sprintf("failed to read %s: %v", path, err))
	}

	boards, err := decode(format, data)
	if err != nil {
		return formatter.FailWithSuggestion(cli.ExitDataErr, "INVALID_DATA", err.Error(),
			"the file should be a snapshot written by 'kanban export'")
	}
	if err := models.ValidateBoards(boards); err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_DATA", err.Error())
	}

	c.Store().Replace(boards)
	if err := formatter.CheckPersist(c.Store()); err != nil {
		return err
	}

	if formatter.Quiet {
		for _, b := range boards {
			if err := formatter.ID(b.ID.String()); err != nil {
				return err
			}
		}
		return nil
	}
	if formatter.JSON {
		cards := 0
		for _, b := range boards {
			cards += b.CardCount()
		}
		return formatter.Success(map[string]any{
			"imported": map[string]any{"boards": len(boards), "cards": cards},
		})
	}

	formatter.Printf("✓ Imported %d boards from %s\n", len(boards), path)
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Inspect or create the config file",
		Annotations: map[string]string{skipApp: "true"},
	}
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "path",
		Short:       "Print where the config file is read from",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cli.NewFormatter(cmd)
			path, err := config.Path()
			if err != nil {
				return f.Fail(cli.ExitError, "CONFIG_ERROR", err.Error())
			}
			if f.JSON {
				return f.Success(map[string]any{"path": path})
			}
			f.Printf("%s\n", path)
			return nil
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cli.NewFormatter(cmd)
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.Path()
			if err != nil {
				return f.Fail(cli.ExitError, "CONFIG_ERROR", err.Error())
			}
			if _, err := os.Stat(path); err == nil && !force {
				return f.FailWithSuggestion(cli.ExitValidation, "CONFIG_EXISTS",
					path+" already exists", "pass --force to overwrite it")
			}

			if err := config.Default().Save(); err != nil {
				return f.Fail(cli.ExitError, "CONFIG_ERROR", err.Error())
			}

			if f.JSON {
				return f.Success(map[string]any{"path": path})
			}
			if !f.Quiet {
				f.Printf("✓ Wrote default config to %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	cli.AddOutputFlags(cmd)
	return cmd
}

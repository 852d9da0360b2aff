package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvvmkit/cli/internal/config"
	"github.com/mvvmkit/cli/internal/output"
)

var configInitForce bool

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mvvmkit configuration",
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a commented starter config file to ~/.mvvmkit/config.yaml.
An existing file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("resolving config location: %w", err)
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		output.Warn("config file already exists, use --force to overwrite", "path", paths.ConfigFile)
		return nil
	}

	if err := os.MkdirAll(paths.HomeDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark("Wrote " + output.StyleNoun.Render(paths.ConfigFile)))
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvvmkit/cli/internal/output"
	"github.com/mvvmkit/cli/internal/scaffold"
)

// NewManifestCmd creates the manifest command.
func NewManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Show the tree mvvmkit would create",
		Long: `Show the directory and file tree mvvmkit generate materializes,
without touching the filesystem.`,
		Args: cobra.NoArgs,
		RunE: runManifest,
	}
}

func runManifest(cmd *cobra.Command, args []string) error {
	output.Print(output.RenderFileTree("<project>", scaffold.FileDescriptions()))
	return nil
}

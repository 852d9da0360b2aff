package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvvmkit/cli/internal/output"
	"github.com/mvvmkit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Println(version.GetInfo().String())
		},
	}
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvvmkit/cli/internal/deps"
	"github.com/mvvmkit/cli/internal/output"
)

var depsJSON bool

// NewDepsCmd creates the deps command.
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the npm packages the scaffolded code needs",
		Long: `List the npm packages the scaffolded code imports, with the version
ranges mvvmkit was built against. Nothing is installed; the list is
informational.

Examples:
  # Human-readable list
  mvvmkit deps

  # Machine-readable, e.g. for piping into jq
  mvvmkit deps --json`,
		Args: cobra.NoArgs,
		RunE: runDeps,
	}

	cmd.Flags().BoolVar(&depsJSON, "json", false, "Output as JSON")

	return cmd
}

func runDeps(cmd *cobra.Command, args []string) error {
	descriptors := deps.Required()

	if depsJSON {
		data, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return err
		}
		output.Println(string(data))
		return nil
	}

	printScope("Runtime dependencies", deps.Runtime())
	output.Println("")
	printScope("Development dependencies", deps.Development())

	return nil
}

func printScope(heading string, descriptors []deps.Descriptor) {
	output.Println(output.StyleSummary.Render(heading))
	for _, d := range descriptors {
		line := fmt.Sprintf("  %s %s",
			output.StyleNoun.Render(d.Name),
			output.StyleDim.Render(d.Version))
		output.Println(line)
	}
}

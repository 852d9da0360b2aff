package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mvvmkit/cli/internal/deps"
	"github.com/mvvmkit/cli/internal/output"
	"github.com/mvvmkit/cli/internal/patch"
	"github.com/mvvmkit/cli/internal/scaffold"
)

var (
	genDir        string
	genForce      bool
	genOverwrite  bool
	genSkipDeps   bool
	genDiff       bool
	genReportFile string
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Scaffold the MVVM layout into an Expo project",
		Long: `Scaffold the MVVM folder structure into an existing Expo project.

Creates the expo-router app/ tree and the src/ tree (components, screens,
features, services, theme, utils, hooks, state), then patches package.json,
tsconfig.json, babel.config.js, and app.json.

Write modes:
  default       existing files are left untouched, missing ones are created
  --force       existing files are overwritten
  --overwrite   the owned app/ and src/ trees are deleted and re-created

Examples:
  # Scaffold into the current directory
  mvvmkit generate

  # Re-scaffold from scratch
  mvvmkit generate --overwrite

  # Preview the config file edits
  mvvmkit generate --diff`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&genDir, "dir", "d", ".", "Target project directory")
	cmd.Flags().BoolVarP(&genForce, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVarP(&genOverwrite, "overwrite", "o", false, "Delete the owned app/ and src/ trees first, then create everything fresh")
	cmd.Flags().BoolVar(&genSkipDeps, "skip-deps", false, "Do not print the dependency install hint")
	cmd.Flags().BoolVar(&genDiff, "diff", false, "Show a diff of each config file edit")
	cmd.Flags().StringVar(&genReportFile, "report-file", "", "Write the run report to a YAML file")
	cmd.MarkFlagsMutuallyExclusive("force", "overwrite")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	params, err := validateTarget(genDir)
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}

	mode := scaffold.ModeSkip
	switch {
	case genOverwrite:
		mode = scaffold.ModeOverwrite
	case genForce:
		mode = scaffold.ModeForce
	}

	output.Debug("generating",
		"dir", genDir,
		"mode", mode.String(),
		"app", params.AppName)

	engine := scaffold.NewEngine(genDir, mode, params)

	var report *scaffold.Report
	err = output.RunWithSpinner(cmd.Context(), func() error {
		r, applyErr := engine.Apply(cmd.Context())
		report = r
		return applyErr
	}, output.WithTitle("Scaffolding "+params.AppName+"..."))
	if err != nil {
		return err
	}

	patchers := []patch.Patcher{
		patch.NewPackageJSON(deps.Required()),
		patch.NewTSConfig(),
		patch.NewBabel(),
		patch.NewAppJSON(),
	}
	results := patch.ApplyAll(patchers, genDir, mode.Forces(), report)

	renderReport(report)

	if genDiff {
		renderDiffs(patchers, results)
	}

	if genReportFile != "" {
		if err := writeReportFile(genReportFile, genDir, mode, report); err != nil {
			output.Error("writing report file", "path", genReportFile, "error", err)
		}
	}

	if !genSkipDeps && !GetToolConfig().Generate.SkipDeps {
		printInstallHint()
	}

	if report.HasFailures() {
		return &ExitError{
			Err:     fmt.Errorf("completed with %d failed entries", len(report.Failed())),
			Code:    ExitPartialFailure,
			Printed: true,
		}
	}

	return nil
}

// renderReport prints one aligned outcome line per entry, failure details,
// and the summary.
func renderReport(report *scaffold.Report) {
	for _, o := range report.Outcomes {
		output.Println(output.FormatOutcomeLine(o.Path, string(o.Action)))
	}

	for _, o := range report.Failed() {
		output.Error("entry failed", "path", o.Path, "error", o.Err)
	}

	output.Println("")
	output.Println(output.FormatCheckmark(output.StyleSummary.Render(report.Summary())))
}

// renderDiffs prints a structural diff for every config file that changed.
func renderDiffs(patchers []patch.Patcher, results []patch.Result) {
	for i, res := range results {
		if !res.Changed {
			continue
		}

		diff, err := output.DiffDocuments(patchers[i].Name(), res.Before, res.After, output.IsTTY())
		if err != nil {
			// babel.config.js is a script, not a document dyff can load.
			output.Debug("diff unavailable", "file", patchers[i].Name(), "error", err)
			continue
		}
		if diff == "" {
			continue
		}

		output.Println("")
		output.Println(output.StyleNoun.Render(patchers[i].Name()))
		output.Print(output.IndentDiff(diff, "  "))
	}
}

// printInstallHint names the packages the caller still has to install.
// mvvmkit never spawns a package manager itself.
func printInstallHint() {
	pm := GetToolConfig().Generate.PackageManager

	runtime := make([]string, 0)
	for _, d := range deps.Runtime() {
		runtime = append(runtime, d.Name)
	}
	development := make([]string, 0)
	for _, d := range deps.Development() {
		development = append(development, d.Name)
	}

	output.Println("")
	output.Println("Next, install the required packages:")
	output.Println("  " + pm + " install " + strings.Join(runtime, " "))
	output.Println("  " + pm + " install -- -D " + strings.Join(development, " "))
}

// reportDocument is the YAML shape written by --report-file.
type reportDocument struct {
	Target   string            `yaml:"target"`
	Mode     string            `yaml:"mode"`
	Summary  string            `yaml:"summary"`
	Outcomes []outcomeDocument `yaml:"outcomes"`
}

type outcomeDocument struct {
	Path   string `yaml:"path"`
	Action string `yaml:"action"`
	Error  string `yaml:"error,omitempty"`
}

func writeReportFile(path, target string, mode scaffold.WriteMode, report *scaffold.Report) error {
	doc := reportDocument{
		Target:  target,
		Mode:    mode.String(),
		Summary: report.Summary(),
	}
	for _, o := range report.Outcomes {
		entry := outcomeDocument{Path: o.Path, Action: string(o.Action)}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		doc.Outcomes = append(doc.Outcomes, entry)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvvmkit/cli/internal/config"
	"github.com/mvvmkit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	toolConfig *config.Config
)

// NewRootCmd creates the root command for the mvvmkit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mvvmkit",
		Short:         "MVVM scaffolding for Expo projects",
		Long:          `mvvmkit scaffolds an MVVM-oriented folder structure into an existing Expo project and wires up the required configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: MVVMKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewDepsCmd())
	rootCmd.AddCommand(NewManifestCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands work with defaults
		loaded = (&config.Config{}).WithDefaults()
	}
	toolConfig = loaded

	// Precedence: flag (if explicitly set) > config > default
	logCfg := output.LogConfig{
		Verbose: verboseFlag || toolConfig.Log.Verbose,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if toolConfig.Log.Timestamps != nil {
		logCfg.Timestamps = toolConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	return nil
}

// GetToolConfig returns the loaded tool configuration.
func GetToolConfig() *config.Config {
	if toolConfig == nil {
		return (&config.Config{}).WithDefaults()
	}
	return toolConfig
}

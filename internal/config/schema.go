// Package config handles mvvmkit CLI configuration.
package config

// Config is the tool configuration loaded from file and environment.
type Config struct {
	// Log controls logger behavior.
	Log LogSettings `mapstructure:"log"`

	// Generate holds defaults for the generate command.
	Generate GenerateSettings `mapstructure:"generate"`
}

// LogSettings controls logger behavior.
type LogSettings struct {
	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose"`

	// Timestamps controls timestamp output; nil defers to verbosity.
	Timestamps *bool `mapstructure:"timestamps"`
}

// GenerateSettings holds defaults for the generate command.
type GenerateSettings struct {
	// SkipDeps suppresses the dependency install hint by default.
	SkipDeps bool `mapstructure:"skipDeps"`

	// PackageManager is the package manager named in install hints.
	PackageManager string `mapstructure:"packageManager"`
}

// DefaultPackageManager is used when no package manager is configured.
const DefaultPackageManager = "npx expo"

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Generate.PackageManager == "" {
		out.Generate.PackageManager = DefaultPackageManager
	}
	return &out
}

// DefaultConfigTemplate is written by `mvvmkit config init`.
const DefaultConfigTemplate = `# mvvmkit configuration
log:
  verbose: false
  # timestamps: true

generate:
  skipDeps: false
  packageManager: "npx expo"
`

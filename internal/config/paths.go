package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths holds the tool's configuration file locations.
type Paths struct {
	// HomeDir is the tool's home directory (~/.mvvmkit).
	HomeDir string

	// ConfigFile is the main configuration file (~/.mvvmkit/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default configuration paths.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("determining home directory: %w", err)
	}

	homeDir := filepath.Join(home, ".mvvmkit")
	return Paths{
		HomeDir:    homeDir,
		ConfigFile: filepath.Join(homeDir, "config.yaml"),
	}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

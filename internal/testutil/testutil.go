// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory,
// creating parent directories as needed, and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile reads a file and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// ExpoProject creates a minimal valid Expo project in a temp directory and
// returns its root. The project satisfies the generate preflight checks.
func ExpoProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteFile(t, root, "package.json", `{
  "name": "demo-app",
  "version": "1.0.0",
  "dependencies": {
    "expo": "~52.0.0",
    "react": "18.3.1",
    "react-native": "0.76.5"
  }
}
`)
	WriteFile(t, root, "app.json", `{
  "expo": {
    "name": "demo-app",
    "slug": "demo-app"
  }
}
`)
	return root
}

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mvvmkit/cli/internal/testutil"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewGenerateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestNewGenerateCmd_Flags(t *testing.T) {
	cmd := NewGenerateCmd()

	assert.Equal(t, "generate", cmd.Use)
	for _, name := range []string{"dir", "force", "overwrite", "skip-deps", "diff", "report-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestGenerate_FullRun(t *testing.T) {
	root := testutil.ExpoProject(t)

	err := execute(t, "--dir", root, "--skip-deps")
	require.NoError(t, err)

	// The scaffolded tree is in place.
	assert.FileExists(t, filepath.Join(root, "app", "_layout.tsx"))
	assert.FileExists(t, filepath.Join(root, "src", "state", "store.ts"))
	assert.DirExists(t, filepath.Join(root, "src", "features"))

	// Templates picked up the project name from app.json.
	home := testutil.ReadFile(t, filepath.Join(root, "src", "screens", "home", "HomeScreen.tsx"))
	assert.Contains(t, home, "demo-app")

	// Config files were patched or created.
	pkg := testutil.ReadFile(t, filepath.Join(root, "package.json"))
	assert.Contains(t, pkg, "expo-router")
	assert.FileExists(t, filepath.Join(root, "tsconfig.json"))
	assert.FileExists(t, filepath.Join(root, "babel.config.js"))
}

func TestGenerate_SecondRunIsIdempotent(t *testing.T) {
	root := testutil.ExpoProject(t)

	require.NoError(t, execute(t, "--dir", root, "--skip-deps"))

	edited := filepath.Join(root, "src", "utils", "format.ts")
	require.NoError(t, os.WriteFile(edited, []byte("// mine\n"), 0o644))

	require.NoError(t, execute(t, "--dir", root, "--skip-deps"))
	assert.Equal(t, "// mine\n", testutil.ReadFile(t, edited))
}

func TestGenerate_ForceRestoresFiles(t *testing.T) {
	root := testutil.ExpoProject(t)

	require.NoError(t, execute(t, "--dir", root, "--skip-deps"))

	edited := filepath.Join(root, "src", "utils", "format.ts")
	require.NoError(t, os.WriteFile(edited, []byte("// mine\n"), 0o644))

	require.NoError(t, execute(t, "--dir", root, "--skip-deps", "--force"))
	assert.NotEqual(t, "// mine\n", testutil.ReadFile(t, edited))
}

func TestGenerate_OverwriteRemovesStrays(t *testing.T) {
	root := testutil.ExpoProject(t)

	require.NoError(t, execute(t, "--dir", root, "--skip-deps"))

	stray := filepath.Join(root, "src", "stray.ts")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0o644))

	require.NoError(t, execute(t, "--dir", root, "--skip-deps", "--overwrite"))
	_, err := os.Stat(stray)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_ForceAndOverwriteAreExclusive(t *testing.T) {
	root := testutil.ExpoProject(t)

	err := execute(t, "--dir", root, "--force", "--overwrite")
	require.Error(t, err)
}

func TestGenerate_PreconditionFailure(t *testing.T) {
	root := t.TempDir()

	err := execute(t, "--dir", root)
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitPreconditionError, exitErr.Code)

	// Nothing was created.
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestGenerate_PartialFailureExitCode(t *testing.T) {
	root := testutil.ExpoProject(t)

	// A file where the src directory belongs.
	testutil.WriteFile(t, root, "src", "")

	err := execute(t, "--dir", root, "--skip-deps")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitPartialFailure, exitErr.Code)
	assert.True(t, exitErr.Printed)

	// The unaffected tree was still created.
	assert.FileExists(t, filepath.Join(root, "app", "_layout.tsx"))
}

func TestGenerate_ReportFile(t *testing.T) {
	root := testutil.ExpoProject(t)
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, execute(t, "--dir", root, "--skip-deps", "--report-file", reportPath))

	var doc reportDocument
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, root, doc.Target)
	assert.Equal(t, "skip", doc.Mode)
	assert.NotEmpty(t, doc.Outcomes)
	assert.Contains(t, doc.Summary, "created")
}

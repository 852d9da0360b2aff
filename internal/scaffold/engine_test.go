package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

func applyFresh(t *testing.T, mode WriteMode) (string, *Report) {
	t.Helper()
	root := t.TempDir()
	report, err := NewEngine(root, mode, testParams).Apply(context.Background())
	require.NoError(t, err)
	return root, report
}

func TestApply_FreshTargetCreatesEverything(t *testing.T) {
	root, report := applyFresh(t, ModeSkip)

	assert.Equal(t, len(Manifest()), report.Count(ActionCreated))
	assert.False(t, report.HasFailures())

	for _, e := range Manifest() {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(e.RelPath)))
		require.NoError(t, err, "entry %s", e.RelPath)
		assert.Equal(t, e.Kind == Directory, info.IsDir(), "entry %s", e.RelPath)
	}
}

func TestApply_SkipModeIsIdempotent(t *testing.T) {
	root, _ := applyFresh(t, ModeSkip)

	report, err := NewEngine(root, ModeSkip, testParams).Apply(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(Manifest()), report.Count(ActionSkipped))
	assert.Zero(t, report.Count(ActionCreated))
	assert.Zero(t, report.Count(ActionOverwritten))
}

func TestApply_SkipModePreservesUserEdits(t *testing.T) {
	root, _ := applyFresh(t, ModeSkip)

	edited := filepath.Join(root, "src", "theme", "colors.ts")
	require.NoError(t, os.WriteFile(edited, []byte("// mine\n"), 0o644))

	_, err := NewEngine(root, ModeSkip, testParams).Apply(context.Background())
	require.NoError(t, err)

	content, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "// mine\n", string(content))
}

func TestApply_ForceModeRestoresEditedFiles(t *testing.T) {
	root, _ := applyFresh(t, ModeSkip)

	edited := filepath.Join(root, "src", "theme", "colors.ts")
	require.NoError(t, os.WriteFile(edited, []byte("// mine\n"), 0o644))

	report, err := NewEngine(root, ModeForce, testParams).Apply(context.Background())
	require.NoError(t, err)

	content, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.NotEqual(t, "// mine\n", string(content))

	// Directories already exist, so only files get rewritten.
	assert.Equal(t, countFiles(), report.Count(ActionOverwritten))
	assert.Equal(t, len(Manifest())-countFiles(), report.Count(ActionSkipped))
}

func TestApply_OverwriteModeRemovesStrayFiles(t *testing.T) {
	root, _ := applyFresh(t, ModeSkip)

	stray := filepath.Join(root, "src", "stray.ts")
	require.NoError(t, os.WriteFile(stray, []byte("x"), 0o644))

	report, err := NewEngine(root, ModeOverwrite, testParams).Apply(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(stray)
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, len(OwnedRoots), report.Count(ActionDeleted))
	assert.Equal(t, len(Manifest()), report.Count(ActionCreated))
}

func TestApply_OverwriteModeLeavesUnownedPathsAlone(t *testing.T) {
	root := t.TempDir()
	keep := filepath.Join(root, "assets", "icon.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(keep), 0o755))
	require.NoError(t, os.WriteFile(keep, []byte("png"), 0o644))

	_, err := NewEngine(root, ModeOverwrite, testParams).Apply(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(keep)
	assert.NoError(t, err)
}

func TestApply_TypeConflictIsIsolated(t *testing.T) {
	root := t.TempDir()

	// A file where the manifest wants the app directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "app"), []byte("x"), 0o644))

	report, err := NewEngine(root, ModeSkip, testParams).Apply(context.Background())
	require.NoError(t, err)

	require.True(t, report.HasFailures())
	for _, o := range report.Failed() {
		assert.True(t, errors.Is(o.Err, oerrors.ErrTypeConflict) || errors.Is(o.Err, oerrors.ErrIO),
			"outcome %s: %v", o.Path, o.Err)
	}

	// The src tree is unaffected by the app conflict.
	_, err = os.Stat(filepath.Join(root, "src", "theme", "colors.ts"))
	assert.NoError(t, err)
}

func TestApply_FileWantedWhereDirectoryExists(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app", "index.tsx"), 0o755))

	report, err := NewEngine(root, ModeForce, testParams).Apply(context.Background())
	require.NoError(t, err)

	var conflict *FileOutcome
	for i, o := range report.Outcomes {
		if o.Path == "app/index.tsx" {
			conflict = &report.Outcomes[i]
		}
	}
	require.NotNil(t, conflict)
	assert.Equal(t, ActionFailed, conflict.Action)
	assert.True(t, errors.Is(conflict.Err, oerrors.ErrTypeConflict))
}

func TestApply_InvalidManifestAborts(t *testing.T) {
	root := t.TempDir()
	manifest := []ManifestEntry{static("../escape.ts", "")}

	report, err := NewEngineWithManifest(root, ModeSkip, testParams, manifest).Apply(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, IsFatal(err))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApply_CancelledContext(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(root, ModeSkip, testParams).Apply(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, IsFatal(err))
}

func TestApply_RunsFullyDeterministic(t *testing.T) {
	_, first := applyFresh(t, ModeSkip)
	_, second := applyFresh(t, ModeSkip)

	require.Equal(t, len(first.Outcomes), len(second.Outcomes))
	for i := range first.Outcomes {
		assert.Equal(t, first.Outcomes[i].Path, second.Outcomes[i].Path)
		assert.Equal(t, first.Outcomes[i].Action, second.Outcomes[i].Action)
	}
}

func countFiles() int {
	n := 0
	for _, e := range Manifest() {
		if e.Kind != Directory {
			n++
		}
	}
	return n
}

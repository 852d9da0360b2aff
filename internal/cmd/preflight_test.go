package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mvvmkit/cli/internal/errors"
	"github.com/mvvmkit/cli/internal/testutil"
)

func TestValidateTarget_ValidProject(t *testing.T) {
	root := testutil.ExpoProject(t)

	params, err := validateTarget(root)
	require.NoError(t, err)
	assert.Equal(t, "demo-app", params.AppName)
	assert.Equal(t, "demo-app", params.Slug)
}

func TestValidateTarget_EmptyDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := validateTarget(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
	assert.Contains(t, err.Error(), "package.json")
}

func TestValidateTarget_NotAnExpoProject(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{
  "name": "plain-node-app",
  "dependencies": {"express": "^4.0.0"}
}
`)

	_, err := validateTarget(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
	assert.Contains(t, err.Error(), "expo")
}

func TestValidateTarget_MissingAppJSON(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{
  "name": "demo",
  "dependencies": {"expo": "~52.0.0"}
}
`)

	_, err := validateTarget(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
	assert.Contains(t, err.Error(), "app.json")
}

func TestValidateTarget_UnparseablePackageJSON(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{ nope`)

	_, err := validateTarget(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
}

func TestValidateTarget_UnparseableAppJSON(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{
  "name": "demo",
  "dependencies": {"expo": "~52.0.0"}
}
`)
	testutil.WriteFile(t, root, "app.json", `{ nope`)

	_, err := validateTarget(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrPrecondition))
}

func TestValidateTarget_NameFallsBackToPackageName(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{
  "name": "pkg-name",
  "dependencies": {"expo": "~52.0.0"}
}
`)
	testutil.WriteFile(t, root, "app.json", `{"expo": {}}`)

	params, err := validateTarget(root)
	require.NoError(t, err)
	assert.Equal(t, "pkg-name", params.AppName)
	assert.Equal(t, "pkg-name", params.Slug)
}

func TestValidateTarget_NameFallsBackToDirectory(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", `{
  "dependencies": {"expo": "~52.0.0"}
}
`)
	testutil.WriteFile(t, root, "app.json", `{"expo": {}}`)

	params, err := validateTarget(root)
	require.NoError(t, err)
	assert.NotEmpty(t, params.AppName)
	assert.Equal(t, params.AppName, params.Slug)
}

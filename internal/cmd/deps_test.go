package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvvmkit/cli/internal/deps"
)

func TestNewDepsCmd(t *testing.T) {
	cmd := NewDepsCmd()

	assert.Equal(t, "deps", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
}

func TestDeps_JSONOutput(t *testing.T) {
	// The command prints through the global logger, so only the JSON
	// round trip of the descriptor set is checked here.
	data, err := json.Marshal(deps.Required())
	require.NoError(t, err)

	var decoded []deps.Descriptor
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, deps.Required(), decoded)
}

func TestDeps_Execute(t *testing.T) {
	cmd := NewDepsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json"})

	require.NoError(t, cmd.Execute())
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCommandTrue(t *testing.T) {
	stdout, _, err := executeCLI("eval", "a & b", "--atom", "a", "--atom", "b")
	require.NoError(t, err)
	assert.Contains(t, stdout, "true")
}

func TestEvalCommandFalse(t *testing.T) {
	stdout, _, err := executeCLI("eval", "a & b", "--atom", "a")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "false")
}

func TestEvalCommandJSON(t *testing.T) {
	stdout, _, err := executeCLI("--format", "json", "eval", "a | b", "--atom", "b")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "(a) | (b)", data["formula"])
	assert.Equal(t, true, data["value"])
}

func TestEvalCommandUnsetAtomsAreFalse(t *testing.T) {
	stdout, _, err := executeCLI("eval", "!missing")
	require.NoError(t, err)
	assert.Contains(t, stdout, "true")
}

func TestEvalCommandParseError(t *testing.T) {
	stdout, _, err := executeCLI("eval", "a ->")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E001]")
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesDefault(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)

	assert.Equal(t, `source:         default
alphabet:       PGYO
expected_count: 5
zones:          [0 1 2 3 other]
`, out)
}

func TestRulesCustomJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "--rules", "testdata/rules/two-corners.cue", "rules")
	require.NoError(t, err)

	var resp struct {
		Status  string    `json:"status"`
		Data    RulesView `json:"data"`
		TraceID string    `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, fixedRunID, resp.TraceID)
	assert.Equal(t, RulesView{
		Source:        "testdata/rules/two-corners.cue",
		Alphabet:      "AB",
		ExpectedCount: 2,
		Zones:         []string{"0", "1", "other"},
	}, resp.Data)
}

func TestRulesRejectsArgs(t *testing.T) {
	_, err := execute(t, "rules", "extra")
	require.Error(t, err)
}

func TestRulesInvalidFile(t *testing.T) {
	out, err := execute(t, "--format", "json", "--rules", "testdata/rules/duplicate.cue", "rules")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E102", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "alphabet[1]")
}

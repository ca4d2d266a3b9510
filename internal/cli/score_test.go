package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestScoreText(t *testing.T) {
	out, err := execute(t, "score", "testdata/sheets/match-3.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "score_text", []byte(out))
}

func TestScoreJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "score", "testdata/sheets/match-3.yaml")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "score_json", []byte(out))
}

func TestScoreInvalidScoresheet(t *testing.T) {
	out, err := execute(t, "--format", "json", "score", "testdata/sheets/unknown-token.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "E201")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, fixedRunID, resp.TraceID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidScoresheet, resp.Error.Code)
	assert.Equal(t,
		"wrong token counts: should be 5 of each of 'P', 'G', 'Y', 'O' but was {G:5 O:5 P:5 Q:1 Y:5}",
		resp.Error.Message)

	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"G": 5.0, "O": 5.0, "P": 5.0, "Q": 1.0, "Y": 5.0}, details["actual"])
	assert.Equal(t, map[string]any{"G": 5.0, "O": 5.0, "P": 5.0, "Y": 5.0}, details["expected"])
}

func TestScoreSkipValidation(t *testing.T) {
	out, err := execute(t, "--format", "json", "score", "--skip-validation", "testdata/sheets/unknown-token.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Scores map[string]struct {
				Score int `json:"score"`
			} `json:"scores"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	// ABC: PPP +6, GOY -3, moved +1; DEF: GG +4, PO -2
	assert.Equal(t, 4, resp.Data.Scores["ABC"].Score)
	assert.Equal(t, 2, resp.Data.Scores["DEF"].Score)
}

func TestScoreSkipValidationLogsWarning(t *testing.T) {
	_, logs, err := executeWithLogs(t, "score", "--skip-validation", "testdata/sheets/match-3.yaml")
	require.NoError(t, err)
	assert.Contains(t, logs, "scoring without validation")
}

func TestScoreMissingZone(t *testing.T) {
	out, err := execute(t, "score", "testdata/sheets/missing-zone.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E202]")
	assert.Contains(t, out, "zone not found: 3")
}

func TestScoreCustomRules(t *testing.T) {
	out, err := execute(t, "--rules", "testdata/rules/two-corners.cue", "score", "testdata/sheets/two-corners.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "ONE:\n        score: 4\n")
	assert.Contains(t, out, "TWO:\n        score: 3\n")
}

func TestScoreLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"missing scoresheet", []string{"score", "testdata/sheets/nope.yaml"}, ErrCodeNotFound},
		{"malformed scoresheet", []string{"score", "testdata/sheets/malformed.yaml"}, ErrCodeLoadFailed},
		{"missing rules", []string{"--rules", "testdata/rules/nope.cue", "score", "testdata/sheets/match-3.yaml"}, ErrCodeNotFound},
		{"broken rules", []string{"--rules", "testdata/rules/broken.cue", "score", "testdata/sheets/match-3.yaml"}, ErrCodeBuildFailed},
		{"invalid rules", []string{"--rules", "testdata/rules/duplicate.cue", "score", "testdata/sheets/match-3.yaml"}, "E102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.wantCode)
			assert.Contains(t, out, "Error ["+tt.wantCode+"]")
		})
	}
}

func TestScoreMissingArgs(t *testing.T) {
	_, err := execute(t, "score")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

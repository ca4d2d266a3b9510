package scoresheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arenascore/internal/scoring"
)

func loadMatch(t *testing.T) *Sheet {
	t.Helper()
	sheet, err := Load(filepath.Join("testdata", "match-3.yaml"))
	require.NoError(t, err)
	return sheet
}

func TestNewReport(t *testing.T) {
	sheet := loadMatch(t)
	r := NewReport(sheet, scoring.Scores{"ABC": 4, "DEF": 2, "GHI": 6}, "run-1")

	assert.Equal(t, 3, r.MatchNumber)
	assert.Equal(t, "main", r.ArenaID)
	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, map[string]TeamScore{
		"ABC": {Score: 4, Zone: 0, Present: true},
		"DEF": {Score: 2, Zone: 1, Present: true},
		"GHI": {Score: 6, Zone: 2, Present: true, Disqualified: true},
	}, r.Scores)
}

func TestReport_CanonicalJSON(t *testing.T) {
	sheet := loadMatch(t)
	r := NewReport(sheet, scoring.Scores{"ABC": 4, "DEF": -2}, "")

	data, err := r.CanonicalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"arena_id":"main","match_number":3,"scores":{"ABC":{"disqualified":false,"present":true,"score":4,"zone":0},"DEF":{"disqualified":false,"present":true,"score":-2,"zone":1}}}`,
		string(data))
}

func TestReport_YAML(t *testing.T) {
	sheet := loadMatch(t)
	r := NewReport(sheet, scoring.Scores{"DEF": 2, "ABC": 4}, "run-1")

	data, err := r.YAML()
	require.NoError(t, err)
	assert.Equal(t, `match_number: 3
arena_id: main
run_id: run-1
scores:
    ABC:
        score: 4
        zone: 0
        present: true
        disqualified: false
    DEF:
        score: 2
        zone: 1
        present: true
        disqualified: false
`, string(data))
}

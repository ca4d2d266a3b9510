package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/arenascore/internal/canonical"
)

// Snapshot returns the canonical JSON form of a scenario outcome, as stored
// in golden files.
func Snapshot(name string, result *Result) ([]byte, error) {
	snap := map[string]any{
		"scenario_name": name,
		"valid":         result.Valid,
	}
	if result.Scores != nil {
		snap["scores"] = map[string]int(result.Scores)
	}
	if result.ValidationError != "" {
		snap["validation_error"] = result.ValidationError
	}
	return canonical.Marshal(snap)
}

// RunWithGolden executes a scenario and compares its outcome against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the outcome doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}

	data, err := Snapshot(scenario.Name, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}

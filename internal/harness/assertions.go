package harness

import (
	"fmt"
	"maps"
	"slices"
)

// checkExpectations compares the scorer outcome with the scenario's
// expectations, recording one error per mismatch.
func checkExpectations(result *Result, expect Expectation, scoreErr error) {
	if expect.Valid != nil && *expect.Valid != result.Valid {
		if *expect.Valid {
			result.AddError(fmt.Sprintf("expected scoresheet to be valid, got: %s", result.ValidationError))
		} else {
			result.AddError("expected validation error, scoresheet was accepted")
		}
	}

	if expect.UnknownSymbols != "" && expect.UnknownSymbols != result.Unknown {
		result.AddError(fmt.Sprintf("unknown symbols: expected %q, got %q", expect.UnknownSymbols, result.Unknown))
	}
	if expect.MismatchedSymbols != "" && expect.MismatchedSymbols != result.Mismatched {
		result.AddError(fmt.Sprintf("mismatched symbols: expected %q, got %q", expect.MismatchedSymbols, result.Mismatched))
	}

	if expect.Scores == nil {
		return
	}
	if scoreErr != nil {
		result.AddError(fmt.Sprintf("scoring failed: %v", scoreErr))
		return
	}
	for _, msg := range compareScores(expect.Scores, result.Scores) {
		result.AddError(msg)
	}
}

// compareScores returns one message per team whose score differs, plus
// teams present on only one side. Messages are ordered by team id.
func compareScores(expected, actual map[string]int) []string {
	ids := make(map[string]struct{}, len(expected)+len(actual))
	for id := range expected {
		ids[id] = struct{}{}
	}
	for id := range actual {
		ids[id] = struct{}{}
	}

	var msgs []string
	for _, id := range slices.Sorted(maps.Keys(ids)) {
		want, wantOK := expected[id]
		got, gotOK := actual[id]
		switch {
		case !gotOK:
			msgs = append(msgs, fmt.Sprintf("score for %s: expected %d, team was not scored", id, want))
		case !wantOK:
			msgs = append(msgs, fmt.Sprintf("score for %s: unexpected score %d", id, got))
		case want != got:
			msgs = append(msgs, fmt.Sprintf("score for %s: expected %d, got %d", id, want, got))
		}
	}
	return msgs
}

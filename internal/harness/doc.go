// Package harness runs conformance scenarios against the scorer.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scores_match_start
//	description: "Every home corner full of an opponent's tokens"
//	scoresheet:
//	  teams:
//	    ABC: { zone: 0 }
//	  arena_zones:
//	    0: { tokens: "YYYYY" }
//	    other: { tokens: "" }
//	expect:
//	  valid: true
//	  scores: { ABC: -5 }
//
// Instead of an inline scoresheet a scenario may name one with
// scoresheet_file, resolved relative to the scenario file.
//
// # Expectations
//
//   - valid: whether Validate must accept the scoresheet
//   - scores: exact scores for every team (subset match is not supported;
//     all computed teams must be listed)
//   - unknown_symbols: characters the validation error must report as
//     outside the alphabet
//   - mismatched_symbols: alphabet symbols the validation error must report
//     with a wrong count
//
// Scores are computed even when validation fails, so a scenario can pin
// both outcomes of a malformed sheet.
//
// # Golden Snapshots
//
// RunWithGolden serializes the outcome as canonical JSON and compares it
// with testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness

package scoring

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrInvalidScoresheet matches every *InvalidScoresheetError via errors.Is.
	ErrInvalidScoresheet = errors.New("invalid scoresheet")

	// ErrZoneNotFound reports structurally absent arena data: a team or the
	// canonical zone walk referenced a zone with no entry in the arena.
	ErrZoneNotFound = errors.New("zone not found")
)

// InvalidScoresheetError reports that the arena does not hold the expected
// token distribution.
//
// Expected and Actual carry the distributions as data so callers can render
// their own diagnostics; Error gives the operator-facing summary.
type InvalidScoresheetError struct {
	// Symbols is the alphabet in corner order.
	Symbols []rune

	// Expected maps every alphabet symbol to the required count.
	Expected map[rune]int

	// Actual maps every non-whitespace character seen to its count.
	Actual map[rune]int
}

// Error implements the error interface.
func (e *InvalidScoresheetError) Error() string {
	quoted := make([]string, len(e.Symbols))
	for i, sym := range e.Symbols {
		quoted[i] = fmt.Sprintf("'%c'", sym)
	}
	count := 0
	if len(e.Symbols) > 0 {
		count = e.Expected[e.Symbols[0]]
	}
	return fmt.Sprintf("wrong token counts: should be %d of each of %s but was %s",
		count, strings.Join(quoted, ", "), FormatCounts(e.Actual))
}

// Is makes errors.Is(err, ErrInvalidScoresheet) succeed.
func (e *InvalidScoresheetError) Is(target error) bool {
	return target == ErrInvalidScoresheet
}

// Unknown returns the observed characters that are not in the alphabet.
func (e *InvalidScoresheetError) Unknown() []rune {
	var unknown []rune
	for sym := range e.Actual {
		if _, ok := e.Expected[sym]; !ok {
			unknown = append(unknown, sym)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// Mismatched returns the alphabet symbols whose observed count is wrong,
// in corner order.
func (e *InvalidScoresheetError) Mismatched() []rune {
	var mismatched []rune
	for _, sym := range e.Symbols {
		if e.Actual[sym] != e.Expected[sym] {
			mismatched = append(mismatched, sym)
		}
	}
	return mismatched
}

// FormatCounts renders a distribution as {A:1 B:2} with symbols sorted.
func FormatCounts(counts map[rune]int) string {
	keys := slices.Sorted(maps.Keys(counts))
	parts := make([]string, len(keys))
	for i, sym := range keys {
		parts[i] = fmt.Sprintf("%c:%d", sym, counts[sym])
	}
	return "{" + strings.Join(parts, " ") + "}"
}

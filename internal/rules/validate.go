package rules

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/arenascore/internal/scoring"
)

// Rules validation error codes (E101-E109).
const (
	ErrAlphabetEmpty    = "E101" // alphabet must name at least one symbol
	ErrDuplicateSymbol  = "E102" // each symbol owns exactly one corner
	ErrCountNotPositive = "E103" // expected_count must be > 0
	ErrWhitespaceSymbol = "E104" // whitespace is cosmetic in token strings
)

// ValidationError is a single semantic problem with a set of rules.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate returns every semantic problem with r. An empty result means the
// rules are usable by scoring.
func Validate(r scoring.Rules) []ValidationError {
	var errs []ValidationError

	if utf8.RuneCountInString(r.Alphabet) == 0 {
		errs = append(errs, ValidationError{
			Field:   "alphabet",
			Message: "alphabet must contain at least one symbol",
			Code:    ErrAlphabetEmpty,
		})
	}

	seen := make(map[rune]int)
	for i, sym := range r.Symbols() {
		if unicode.IsSpace(sym) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("alphabet[%d]", i),
				Message: fmt.Sprintf("symbol %q is whitespace, which token strings ignore", sym),
				Code:    ErrWhitespaceSymbol,
			})
			continue
		}
		if first, dup := seen[sym]; dup {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("alphabet[%d]", i),
				Message: fmt.Sprintf("symbol %q already owns corner %d", sym, first),
				Code:    ErrDuplicateSymbol,
			})
			continue
		}
		seen[sym] = i
	}

	if r.ExpectedCount <= 0 {
		errs = append(errs, ValidationError{
			Field:   "expected_count",
			Message: fmt.Sprintf("expected_count must be positive, got %d", r.ExpectedCount),
			Code:    ErrCountNotPositive,
		})
	}

	return errs
}

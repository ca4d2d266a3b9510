package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arenascore/internal/scoring"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidate_ReferenceRules(t *testing.T) {
	assert.Empty(t, Validate(scoring.DefaultRules()))
}

func TestValidate_EmptyAlphabet(t *testing.T) {
	errs := Validate(scoring.Rules{Alphabet: "", ExpectedCount: 5})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrAlphabetEmpty, errs[0].Code)
	assert.Equal(t, "alphabet", errs[0].Field)
}

func TestValidate_DuplicateSymbol(t *testing.T) {
	errs := Validate(scoring.Rules{Alphabet: "PGPO", ExpectedCount: 5})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateSymbol, errs[0].Code)
	assert.Equal(t, "alphabet[2]", errs[0].Field)
	assert.Contains(t, errs[0].Message, "corner 0")
}

func TestValidate_WhitespaceSymbol(t *testing.T) {
	errs := Validate(scoring.Rules{Alphabet: "P G", ExpectedCount: 5})
	require.Len(t, errs, 1)
	assert.Equal(t, ErrWhitespaceSymbol, errs[0].Code)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	errs := Validate(scoring.Rules{Alphabet: "PP", ExpectedCount: 0})
	assert.Equal(t, []string{ErrDuplicateSymbol, ErrCountNotPositive}, codes(errs))
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "expected_count", Message: "must be positive", Code: ErrCountNotPositive}
	assert.Equal(t, "[E103] expected_count: must be positive", err.Error())
}

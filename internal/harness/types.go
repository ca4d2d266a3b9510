package harness

import "github.com/roach88/arenascore/internal/scoring"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Valid reports whether Validate accepted the scoresheet.
	Valid bool `json:"valid"`

	// ValidationError is the rendered validation failure, if any.
	ValidationError string `json:"validation_error,omitempty"`

	// Unknown and Mismatched are copied from *scoring.InvalidScoresheetError.
	Unknown    string `json:"unknown_symbols,omitempty"`
	Mismatched string `json:"mismatched_symbols,omitempty"`

	// Scores is nil when scoring hit structurally absent data.
	Scores scoring.Scores `json:"scores,omitempty"`

	// Errors lists failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records a failed expectation and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

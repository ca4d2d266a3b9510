package rules

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/arenascore/internal/scoring"
)

//go:embed schema.cue
var schemaSource string

//go:embed default.cue
var defaultSource string

// CompileError reports a rules file that could not be compiled.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default compiles the embedded reference configuration.
func Default() (scoring.Rules, error) {
	r, err := CompileString("default.cue", defaultSource)
	if err != nil {
		return scoring.Rules{}, err
	}
	return *r, nil
}

// LoadFile reads and compiles a CUE rules file.
func LoadFile(path string) (*scoring.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return compileBytes(path, data)
}

// CompileString compiles CUE source; name is used in error positions.
func CompileString(name, src string) (*scoring.Rules, error) {
	return compileBytes(name, []byte(src))
}

func compileBytes(name string, src []byte) (*scoring.Rules, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(name))
	return Compile(v)
}

// Compile unifies v with the #Rules schema and extracts the rules.
// Values must be concrete.
func Compile(v cue.Value) (*scoring.Rules, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	if err := checkFields(v); err != nil {
		return nil, err
	}

	schema := v.Context().CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Rules")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	alphabet, err := unified.LookupPath(cue.ParsePath("alphabet")).String()
	if err != nil {
		return nil, &CompileError{Field: "alphabet", Message: err.Error(), Pos: v.Pos()}
	}
	count, err := unified.LookupPath(cue.ParsePath("expected_count")).Int64()
	if err != nil {
		return nil, &CompileError{Field: "expected_count", Message: err.Error(), Pos: v.Pos()}
	}

	return &scoring.Rules{
		Alphabet:      alphabet,
		ExpectedCount: int(count),
	}, nil
}

// knownFields are the labels #Rules accepts.
var knownFields = map[string]bool{
	"alphabet":       true,
	"expected_count": true,
}

// checkFields rejects labels outside #Rules so typos are not silently
// ignored.
func checkFields(v cue.Value) error {
	iter, err := v.Fields()
	if err != nil {
		return formatCUEError(err)
	}
	for iter.Next() {
		if !knownFields[iter.Label()] {
			return &CompileError{
				Field:   iter.Label(),
				Message: "unknown field",
				Pos:     iter.Value().Pos(),
			}
		}
	}
	return nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &CompileError{Field: "cue", Message: first.Error()}
}

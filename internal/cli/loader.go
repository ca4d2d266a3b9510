package cli

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/arenascore/internal/rules"
	"github.com/roach88/arenascore/internal/scoresheet"
	"github.com/roach88/arenascore/internal/scoring"
)

// Error codes for CLI responses. Rules validation codes (E101-E104) come
// from the rules package.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // File could not be parsed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE rules did not compile

	ErrCodeInvalidScoresheet = "E201" // Token distribution check failed
	ErrCodeZoneNotFound      = "E202" // Team or canonical zone missing from the arena
	ErrCodePolicyRejected    = "E203" // A validation policy rejected the sheet
)

// LoadError represents an error that occurred while loading an input file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadRules returns the reference rules when path is empty, and otherwise
// compiles the CUE file at path. Compiled rules must also pass
// rules.Validate; the first problem is reported.
func LoadRules(path string) (scoring.Rules, error) {
	if path == "" {
		r, err := rules.Default()
		if err != nil {
			return scoring.Rules{}, &LoadError{Code: ErrCodeBuildFailed, Message: err.Error()}
		}
		return r, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return scoring.Rules{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("rules file not found: %s", path)}
		}
		return scoring.Rules{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing rules file: %v", err)}
	}

	r, err := rules.LoadFile(path)
	if err != nil {
		var ce *rules.CompileError
		if errors.As(err, &ce) {
			return scoring.Rules{}, &LoadError{
				Code:    ErrCodeBuildFailed,
				Message: fmt.Sprintf("%s: %s", ce.Field, ce.Message),
				Pos:     ce.Pos,
			}
		}
		return scoring.Rules{}, &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
	}

	if errs := rules.Validate(*r); len(errs) > 0 {
		return scoring.Rules{}, &LoadError{
			Code:    errs[0].Code,
			Message: fmt.Sprintf("%s: %s", errs[0].Field, errs[0].Message),
		}
	}
	return *r, nil
}

// LoadScoresheet reads and decodes the scoresheet at path.
func LoadScoresheet(path string) (*scoresheet.Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scoresheet not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing scoresheet: %v", err)}
	}

	sheet, err := scoresheet.Load(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: err.Error()}
	}
	return sheet, nil
}

// outputLoadError reports err and converts it to a command error (exit 2).
func outputLoadError(f *OutputFormatter, err error, traceID string) error {
	code, message := ErrCodeGeneric, err.Error()
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code, message = loadErr.Code, loadErr.Message
		if loadErr.Pos.IsValid() {
			message = loadErr.Error()
		}
	}
	_ = f.Error(code, message, nil, traceID)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// classifyScorerError maps a Validate or CalculateScores error to its
// response code and details.
func classifyScorerError(err error) (string, any) {
	var invalid *scoring.InvalidScoresheetError
	switch {
	case errors.As(err, &invalid):
		return ErrCodeInvalidScoresheet, map[string]any{
			"expected": countsDetail(invalid.Expected),
			"actual":   countsDetail(invalid.Actual),
		}
	case errors.Is(err, scoring.ErrZoneNotFound):
		return ErrCodeZoneNotFound, nil
	default:
		return ErrCodePolicyRejected, nil
	}
}

func countsDetail(counts map[rune]int) map[string]int {
	out := make(map[string]int, len(counts))
	for sym, n := range counts {
		out[string(sym)] = n
	}
	return out
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arenascore/internal/scoring"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	Unknown    string `json:"unknown_symbols,omitempty"`
	Mismatched string `json:"mismatched_symbols,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scoresheet>",
		Short: "Check a scoresheet's token distribution without scoring",
		Long: `Check that a scoresheet accounts for exactly the expected number of
each token symbol across all zones, and nothing else.

Faster feedback than score while a referee is still filling in a sheet.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	runID := opts.runIDs().Generate()
	log := newLogger(opts, cmd.ErrOrStderr()).With("run_id", runID)

	r, err := LoadRules(opts.RulesFile)
	if err != nil {
		return outputLoadError(formatter, err, runID)
	}
	sheet, err := LoadScoresheet(path)
	if err != nil {
		return outputLoadError(formatter, err, runID)
	}

	scorer := scoring.New(sheet.Teams(), sheet.Arena(), scoring.WithRules(r))
	if err := scorer.Validate(sheet.ExtraData()); err != nil {
		log.Info("scoresheet rejected", "path", path, "error", err)
		return outputValidationFailure(formatter, err, runID)
	}

	log.Info("scoresheet valid", "path", path)
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true}, runID)
	}

	fmt.Fprintln(formatter.Writer, "✓ Scoresheet valid")
	return nil
}

// outputValidationFailure outputs a rejected scoresheet.
func outputValidationFailure(formatter *OutputFormatter, err error, traceID string) error {
	code, details := classifyScorerError(err)

	result := ValidationResult{Valid: false}
	var invalid *scoring.InvalidScoresheetError
	if errors.As(err, &invalid) {
		result.Unknown = string(invalid.Unknown())
		result.Mismatched = string(invalid.Mismatched())
	}

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    code,
				Message: err.Error(),
				Details: details,
			},
			TraceID: traceID,
		}
		if encErr := formatter.encode(response); encErr != nil {
			return encErr
		}
		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, err.Error())
	if result.Unknown != "" {
		fmt.Fprintf(formatter.Writer, "  unknown symbols: %s\n", result.Unknown)
	}
	if result.Mismatched != "" {
		fmt.Fprintf(formatter.Writer, "  mismatched symbols: %s\n", result.Mismatched)
	}

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
}

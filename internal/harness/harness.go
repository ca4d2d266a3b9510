package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/arenascore/internal/scoresheet"
	"github.com/roach88/arenascore/internal/scoring"
)

// Harness executes scenarios with a fixed set of rules and policies.
type Harness struct {
	rules    scoring.Rules
	policies []scoring.Policy
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithRules replaces scoring.DefaultRules.
func WithRules(r scoring.Rules) Option {
	return func(h *Harness) {
		h.rules = r
	}
}

// WithPolicy adds a validation policy applied to every scenario.
func WithPolicy(p scoring.Policy) Option {
	return func(h *Harness) {
		h.policies = append(h.policies, p)
	}
}

// WithLogger routes harness logs to l. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		rules:  scoring.DefaultRules(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(opts...).Run(scenario)
}

// Run executes a scenario and checks its expectations.
//
// The returned error is reserved for scenarios that cannot be executed at
// all (unreadable scoresheet file). Scorer outcomes, including structural
// lookup errors, are reported in the Result.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	sheet, err := h.resolveSheet(scenario)
	if err != nil {
		return nil, err
	}

	log := h.logger.With("scenario", scenario.Name)
	scorer := h.newScorer(sheet)
	result := NewResult()

	validateErr := scorer.Validate(sheet.ExtraData())
	var invalid *scoring.InvalidScoresheetError
	switch {
	case validateErr == nil:
		result.Valid = true
	case errors.As(validateErr, &invalid):
		result.ValidationError = invalid.Error()
		result.Unknown = string(invalid.Unknown())
		result.Mismatched = string(invalid.Mismatched())
	default:
		result.ValidationError = validateErr.Error()
	}
	log.Debug("validated", "valid", result.Valid, "error", result.ValidationError)

	scores, scoreErr := scorer.CalculateScores()
	if scoreErr != nil {
		log.Debug("scoring failed", "error", scoreErr)
	} else {
		result.Scores = scores
	}

	checkExpectations(result, scenario.Expect, scoreErr)
	log.Info("scenario finished", "pass", result.Pass)

	return result, nil
}

func (h *Harness) newScorer(sheet *scoresheet.Sheet) *scoring.Scorer {
	opts := []scoring.Option{scoring.WithRules(h.rules)}
	for _, p := range h.policies {
		opts = append(opts, scoring.WithPolicy(p))
	}
	return scoring.New(sheet.Teams(), sheet.Arena(), opts...)
}

func (h *Harness) resolveSheet(scenario *Scenario) (*scoresheet.Sheet, error) {
	if scenario.Scoresheet != nil {
		return scenario.Scoresheet, nil
	}
	sheet, err := scoresheet.Load(scenario.ScoresheetFile)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return sheet, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arenascore/internal/scoresheet"
	"github.com/roach88/arenascore/internal/scoring"
)

// ScoreOptions holds flags for the score command.
type ScoreOptions struct {
	*RootOptions
	SkipValidation bool
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "score <scoresheet>",
		Short: "Validate a scoresheet and print team scores",
		Long: `Validate a scoresheet and compute every team's score.

Each token of the team's own colour in its home corner is worth 2 points,
every other token there costs 1, and a team that left its starting area
earns 1 more. Scores are only printed for sheets that validate, unless
--skip-validation is given.

Exit codes:
  0 - Scores computed
  1 - Scoresheet failed validation or references a missing zone
  2 - Command error (missing file, bad rules, etc.)

Examples:
  arenascore score match-3.yaml
  arenascore score match-3.yaml --format json
  arenascore score match-3.yaml --rules tournament.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.SkipValidation, "skip-validation", false, "score without checking token counts")

	return cmd
}

func runScore(opts *ScoreOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	runID := opts.runIDs().Generate()
	log := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("run_id", runID)

	r, err := LoadRules(opts.RulesFile)
	if err != nil {
		return outputLoadError(formatter, err, runID)
	}
	sheet, err := LoadScoresheet(path)
	if err != nil {
		return outputLoadError(formatter, err, runID)
	}
	log.Debug("loaded scoresheet", "path", path, "teams", len(sheet.TeamEntries), "zones", len(sheet.Zones))

	scorer := scoring.New(sheet.Teams(), sheet.Arena(), scoring.WithRules(r))
	if opts.SkipValidation {
		log.Warn("scoring without validation", "path", path)
	} else if err := scorer.Validate(sheet.ExtraData()); err != nil {
		return outputScorerError(formatter, err, runID)
	}

	scores, err := scorer.CalculateScores()
	if err != nil {
		return outputScorerError(formatter, err, runID)
	}
	log.Info("scored match", "match", sheet.MatchNumber, "teams", len(scores))

	report := scoresheet.NewReport(sheet, scores, runID)
	if formatter.Format == "json" {
		return formatter.Success(report, runID)
	}

	data, err := report.YAML()
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil, runID)
		return WrapExitError(ExitCommandError, "failed to render report", err)
	}
	_, err = formatter.Writer.Write(data)
	return err
}

// outputScorerError reports a scorer failure; all of them exit 1.
func outputScorerError(f *OutputFormatter, err error, traceID string) error {
	code, details := classifyScorerError(err)
	_ = f.Error(code, err.Error(), details, traceID)
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", code, err.Error()))
}

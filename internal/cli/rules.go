package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RulesView is the printable form of the active rules.
type RulesView struct {
	Source        string   `json:"source"`
	Alphabet      string   `json:"alphabet"`
	ExpectedCount int      `json:"expected_count"`
	Zones         []string `json:"zones"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the active scoring rules",
		Long: `Print the rules scoresheets are checked against: the token alphabet
(symbol i is the home token of corner i), the expected count of each symbol,
and the zones a sheet must list.

Without --rules the reference configuration is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(rootOpts, cmd)
		},
	}
}

func runRules(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	runID := opts.runIDs().Generate()

	r, err := LoadRules(opts.RulesFile)
	if err != nil {
		return outputLoadError(formatter, err, runID)
	}

	view := RulesView{
		Source:        "default",
		Alphabet:      r.Alphabet,
		ExpectedCount: r.ExpectedCount,
	}
	if opts.RulesFile != "" {
		view.Source = opts.RulesFile
	}
	for _, z := range r.Zones() {
		view.Zones = append(view.Zones, z.String())
	}

	if formatter.Format == "json" {
		return formatter.Success(view, runID)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "source:         %s\n", view.Source)
	fmt.Fprintf(w, "alphabet:       %s\n", view.Alphabet)
	fmt.Fprintf(w, "expected_count: %d\n", view.ExpectedCount)
	fmt.Fprintf(w, "zones:          %v\n", view.Zones)
	return nil
}

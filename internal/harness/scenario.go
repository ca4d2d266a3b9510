package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/arenascore/internal/scoresheet"
)

// Scenario is one conformance case: a scoresheet and what the scorer must
// make of it.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Scoresheet is the inline match snapshot.
	Scoresheet *scoresheet.Sheet `yaml:"scoresheet,omitempty"`

	// ScoresheetFile names a scoresheet on disk instead of Scoresheet.
	// Relative paths are resolved against the scenario file's directory.
	ScoresheetFile string `yaml:"scoresheet_file,omitempty"`

	// Expect is what the scorer must produce.
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the required scorer outcome.
type Expectation struct {
	// Valid, when set, is the required Validate outcome.
	Valid *bool `yaml:"valid,omitempty"`

	// Scores, when set, must equal CalculateScores exactly.
	Scores map[string]int `yaml:"scores,omitempty"`

	// UnknownSymbols lists the characters the validation error must report
	// as outside the alphabet, in sorted order.
	UnknownSymbols string `yaml:"unknown_symbols,omitempty"`

	// MismatchedSymbols lists the alphabet symbols the validation error
	// must report with a wrong count, in corner order.
	MismatchedSymbols string `yaml:"mismatched_symbols,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.ScoresheetFile != "" && !filepath.IsAbs(scenario.ScoresheetFile) {
		scenario.ScoresheetFile = filepath.Join(filepath.Dir(path), scenario.ScoresheetFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarioFiles returns the .yaml/.yml files under dir whose base name
// (without extension) matches filter. An empty filter matches everything.
// Files under a "golden" directory are skipped.
func FindScenarioFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	sort.Strings(files)
	return files, err
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Scoresheet == nil && s.ScoresheetFile == "":
		return fmt.Errorf("one of scoresheet or scoresheet_file is required")
	case s.Scoresheet != nil && s.ScoresheetFile != "":
		return fmt.Errorf("scoresheet and scoresheet_file are mutually exclusive")
	case s.Scoresheet != nil:
		if err := s.Scoresheet.Check(); err != nil {
			return fmt.Errorf("scoresheet: %w", err)
		}
	default:
		if _, err := os.Stat(s.ScoresheetFile); os.IsNotExist(err) {
			return fmt.Errorf("scoresheet file not found: %s", s.ScoresheetFile)
		}
	}

	e := s.Expect
	if e.Valid == nil && e.Scores == nil {
		return fmt.Errorf("expect must set valid or scores")
	}
	if (e.UnknownSymbols != "" || e.MismatchedSymbols != "") && (e.Valid == nil || *e.Valid) {
		return fmt.Errorf("expect: unknown_symbols and mismatched_symbols require valid: false")
	}

	return nil
}

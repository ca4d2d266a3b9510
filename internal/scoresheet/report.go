package scoresheet

import (
	"gopkg.in/yaml.v3"

	"github.com/roach88/arenascore/internal/canonical"
	"github.com/roach88/arenascore/internal/scoring"
)

// TeamScore is one team's line in a Report.
type TeamScore struct {
	Score        int  `yaml:"score" json:"score"`
	Zone         int  `yaml:"zone" json:"zone"`
	Present      bool `yaml:"present" json:"present"`
	Disqualified bool `yaml:"disqualified" json:"disqualified"`
}

// Report is the scored result of one match.
type Report struct {
	MatchNumber int                  `yaml:"match_number,omitempty" json:"match_number,omitempty"`
	ArenaID     string               `yaml:"arena_id,omitempty" json:"arena_id,omitempty"`
	RunID       string               `yaml:"run_id,omitempty" json:"run_id,omitempty"`
	Scores      map[string]TeamScore `yaml:"scores" json:"scores"`
}

// NewReport combines the sheet's team flags with computed scores. Teams
// without a computed score are left out.
func NewReport(sheet *Sheet, scores scoring.Scores, runID string) *Report {
	r := &Report{
		MatchNumber: sheet.MatchNumber,
		ArenaID:     sheet.ArenaID,
		RunID:       runID,
		Scores:      make(map[string]TeamScore, len(scores)),
	}
	for id, score := range scores {
		team := sheet.TeamEntries[id]
		r.Scores[id] = TeamScore{
			Score:        score,
			Zone:         team.Zone,
			Present:      team.IsPresent(),
			Disqualified: team.Disqualified,
		}
	}
	return r
}

// YAML renders the report; map keys are emitted sorted.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// CanonicalMap returns the report as plain values for canonical encoding.
func (r *Report) CanonicalMap() map[string]any {
	scores := make(map[string]any, len(r.Scores))
	for id, ts := range r.Scores {
		scores[id] = map[string]any{
			"score":        ts.Score,
			"zone":         ts.Zone,
			"present":      ts.Present,
			"disqualified": ts.Disqualified,
		}
	}

	m := map[string]any{"scores": scores}
	if r.MatchNumber != 0 {
		m["match_number"] = r.MatchNumber
	}
	if r.ArenaID != "" {
		m["arena_id"] = r.ArenaID
	}
	if r.RunID != "" {
		m["run_id"] = r.RunID
	}
	return m
}

// CanonicalJSON renders the report as canonical JSON.
func (r *Report) CanonicalJSON() ([]byte, error) {
	return canonical.Marshal(r.CanonicalMap())
}

package scoring

import (
	"fmt"
	"maps"
	"slices"
	"unicode"
)

// TeamRecord is one team's entry in the round.
type TeamRecord struct {
	// Zone is the index of the home corner the team owns.
	Zone int `json:"zone"`

	// Moved is set when the team left its starting corner.
	Moved bool `json:"moved,omitempty"`
}

// ZoneRecord holds the tokens found in one zone at the end of the round.
// Whitespace in Tokens is cosmetic grouping and is ignored.
type ZoneRecord struct {
	Tokens string `json:"tokens"`
}

// Teams maps team id to record.
type Teams map[string]TeamRecord

// Arena maps zone to its contents.
type Arena map[Zone]ZoneRecord

// Scores maps team id to score. Scores may be negative.
type Scores map[string]int

// Scorer computes and validates one round. Construct with New.
type Scorer struct {
	teams    Teams
	arena    Arena
	rules    Rules
	policies []Policy
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRules overrides DefaultRules.
func WithRules(r Rules) Option {
	return func(s *Scorer) {
		s.rules = r
	}
}

// WithPolicy appends a validation policy. Policies run in the order given.
func WithPolicy(p Policy) Option {
	return func(s *Scorer) {
		s.policies = append(s.policies, p)
	}
}

// New creates a Scorer over the given snapshots. It never fails and does not
// validate; the maps are retained, not copied.
func New(teams Teams, arena Arena, opts ...Option) *Scorer {
	s := &Scorer{
		teams: teams,
		arena: arena,
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the rules the Scorer applies.
func (s *Scorer) Rules() Rules {
	return s.rules
}

// CalculateScores returns the score of every team.
//
// It performs no validation. An error is returned only for structurally
// absent data, wrapping ErrZoneNotFound.
func (s *Scorer) CalculateScores() (Scores, error) {
	homes := s.rules.Symbols()
	scores := make(Scores, len(s.teams))

	// Sorted so the reported error is stable when several teams are broken.
	for _, id := range slices.Sorted(maps.Keys(s.teams)) {
		score, err := s.scoreTeam(homes, s.teams[id])
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", id, err)
		}
		scores[id] = score
	}
	return scores, nil
}

func (s *Scorer) scoreTeam(homes []rune, team TeamRecord) (int, error) {
	if team.Zone < 0 || team.Zone >= len(homes) {
		return 0, fmt.Errorf("%w: corner %d has no home token", ErrZoneNotFound, team.Zone)
	}
	own := homes[team.Zone]

	zone, ok := s.arena[Corner(team.Zone)]
	if !ok {
		return 0, fmt.Errorf("%w: corner %d", ErrZoneNotFound, team.Zone)
	}

	score := 0
	if team.Moved {
		score = 1
	}
	for _, token := range zone.Tokens {
		switch {
		case unicode.IsSpace(token):
		case token == own:
			score += 2
		default:
			score--
		}
	}
	return score, nil
}

// Validate checks that the arena holds exactly ExpectedCount tokens of each
// alphabet symbol and nothing else, then runs any configured policies.
//
// A distribution mismatch is reported as *InvalidScoresheetError. A zone
// missing from the arena wraps ErrZoneNotFound instead. extra is passed
// through to policies untouched.
func (s *Scorer) Validate(extra any) error {
	actual, err := s.countTokens()
	if err != nil {
		return err
	}

	expected := s.rules.ExpectedCounts()
	if !maps.Equal(actual, expected) {
		return &InvalidScoresheetError{
			Symbols:  s.rules.Symbols(),
			Expected: expected,
			Actual:   actual,
		}
	}

	for _, p := range s.policies {
		if err := p.Check(s.teams, s.arena, extra); err != nil {
			return err
		}
	}
	return nil
}

// countTokens tallies every non-whitespace character across all zones in
// canonical order.
func (s *Scorer) countTokens() (map[rune]int, error) {
	counts := make(map[rune]int)
	for _, zone := range s.rules.Zones() {
		rec, ok := s.arena[zone]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zone)
		}
		for _, token := range rec.Tokens {
			if !unicode.IsSpace(token) {
				counts[token]++
			}
		}
	}
	return counts, nil
}

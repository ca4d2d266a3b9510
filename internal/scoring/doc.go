// Package scoring computes and validates team scores for one round of the
// token game.
//
// The arena is split into N home corners, one per token symbol, plus a single
// catch-all "other" zone. A team owns the corner it starts in. Tokens of the
// team's own symbol in its corner are worth +2 each, any other token in that
// corner costs 1, and a team that left its starting corner gets a further
// point.
//
// Scores are only meaningful once the arena has been validated: across all
// zones there must be exactly Rules.ExpectedCount tokens of every symbol and
// nothing else. Callers run Validate before trusting CalculateScores.
//
//	s := scoring.New(teams, arena)
//	if err := s.Validate(nil); err != nil {
//	    return err
//	}
//	scores, err := s.CalculateScores()
//
// A Scorer never mutates its inputs and holds no other state, so repeated
// calls return identical results and separate Scorers may be used from
// separate goroutines.
package scoring

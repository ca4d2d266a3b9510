package scoring

import "unicode/utf8"

// Rules fixes the token alphabet and the expected inventory for a round.
type Rules struct {
	// Alphabet lists the token symbols in corner order: symbol i is the
	// home token of corner i.
	Alphabet string `json:"alphabet"`

	// ExpectedCount is how many tokens of each symbol exist in the arena.
	ExpectedCount int `json:"expected_count"`
}

// DefaultRules returns the reference configuration: four symbols P, G, Y, O
// on corners 0..3 with five tokens each.
func DefaultRules() Rules {
	return Rules{Alphabet: "PGYO", ExpectedCount: 5}
}

// Symbols returns the home token table indexed by corner.
func (r Rules) Symbols() []rune {
	return []rune(r.Alphabet)
}

// Corners returns the number of home corners.
func (r Rules) Corners() int {
	return utf8.RuneCountInString(r.Alphabet)
}

// HomeToken returns the home token of the given corner.
func (r Rules) HomeToken(corner int) (rune, bool) {
	symbols := r.Symbols()
	if corner < 0 || corner >= len(symbols) {
		return 0, false
	}
	return symbols[corner], true
}

// Zones returns every zone in canonical order: corners 0..N-1, then Other.
func (r Rules) Zones() []Zone {
	n := r.Corners()
	zones := make([]Zone, 0, n+1)
	for i := 0; i < n; i++ {
		zones = append(zones, Corner(i))
	}
	return append(zones, Other)
}

// ExpectedCounts returns the token distribution a valid arena must hold.
func (r Rules) ExpectedCounts() map[rune]int {
	counts := make(map[rune]int, r.Corners())
	for _, sym := range r.Alphabet {
		counts[sym] = r.ExpectedCount
	}
	return counts
}

// Package scoresheet reads match scoresheets and writes score reports.
//
// A scoresheet is the YAML snapshot of one match that the scorer consumes:
//
//	match_number: 3
//	arena_id: main
//	teams:
//	  ABC: { zone: 0, present: true, moved: true }
//	  DEF: { zone: 1 }
//	arena_zones:
//	  0: { tokens: "PGOY PP" }
//	  1: { tokens: "GPO G" }
//	  2: { tokens: "YYY" }
//	  3: { tokens: "OY" }
//	  other: { tokens: "P OO GG" }
//	extra:
//	  referee: "Jo"
//
// Decoding is strict: unknown fields are rejected so a typo never silently
// drops data. The optional extra mapping is handed to scoring.Scorer.Validate
// as its extension argument.
package scoresheet

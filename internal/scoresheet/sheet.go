package scoresheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/arenascore/internal/scoring"
)

// Sheet is one match as recorded by the competition system.
type Sheet struct {
	MatchNumber int             `yaml:"match_number,omitempty"`
	ArenaID     string          `yaml:"arena_id,omitempty"`
	TeamEntries map[string]Team `yaml:"teams"`
	Zones       Zones           `yaml:"arena_zones"`
	Extra       map[string]any  `yaml:"extra,omitempty"`
}

// Team is a team's line on the scoresheet.
//
// Present and Disqualified are carried through to the report; scoring never
// reads them.
type Team struct {
	Zone         int   `yaml:"zone"`
	Present      *bool `yaml:"present,omitempty"`
	Moved        bool  `yaml:"moved,omitempty"`
	Disqualified bool  `yaml:"disqualified,omitempty"`
}

// IsPresent reports whether the team turned up. A missing flag means present.
func (t Team) IsPresent() bool {
	return t.Present == nil || *t.Present
}

// ZoneEntry is the recorded content of one arena zone.
type ZoneEntry struct {
	Tokens string `yaml:"tokens"`
}

// Zones maps arena zone to its entry. Keys are corner indices or "other".
type Zones map[scoring.Zone]ZoneEntry

// UnmarshalYAML decodes zone keys through scoring.ParseZone.
func (z *Zones) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: arena_zones must be a mapping", n.Line)
	}

	out := make(Zones, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		zone, err := scoring.ParseZone(keyNode.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}
		if _, dup := out[zone]; dup {
			return fmt.Errorf("line %d: duplicate zone %s", keyNode.Line, zone)
		}

		entry, err := decodeZoneEntry(valNode)
		if err != nil {
			return fmt.Errorf("zone %s: %w", zone, err)
		}
		out[zone] = entry
	}

	*z = out
	return nil
}

// decodeZoneEntry decodes a zone body, rejecting unknown keys.
// Node.Decode does not inherit KnownFields from the outer decoder.
func decodeZoneEntry(n *yaml.Node) (ZoneEntry, error) {
	if n.Kind != yaml.MappingNode {
		return ZoneEntry{}, fmt.Errorf("line %d: zone must be a mapping with a tokens field", n.Line)
	}
	for i := 0; i < len(n.Content); i += 2 {
		if key := n.Content[i].Value; key != "tokens" {
			return ZoneEntry{}, fmt.Errorf("line %d: field %s not found in zone", n.Content[i].Line, key)
		}
	}

	var entry ZoneEntry
	if err := n.Decode(&entry); err != nil {
		return ZoneEntry{}, err
	}
	return entry, nil
}

// MarshalYAML writes zones with their textual keys.
func (z Zones) MarshalYAML() (any, error) {
	out := make(map[string]ZoneEntry, len(z))
	for zone, entry := range z {
		out[zone.String()] = entry
	}
	return out, nil
}

// Load reads and decodes a scoresheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoresheet: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a scoresheet, rejecting unknown fields and sheets without
// arena zones.
func Decode(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty scoresheet")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := sheet.Check(); err != nil {
		return nil, fmt.Errorf("invalid scoresheet: %w", err)
	}
	return &sheet, nil
}

// Check enforces the structural requirements of the format. Token
// distribution is scoring's business, not ours.
func (s *Sheet) Check() error {
	if len(s.Zones) == 0 {
		return fmt.Errorf("arena_zones is required and must be non-empty")
	}
	for id, team := range s.TeamEntries {
		if id == "" {
			return fmt.Errorf("teams: empty team id")
		}
		if team.Zone < 0 {
			return fmt.Errorf("teams.%s: zone must be non-negative, got %d", id, team.Zone)
		}
	}
	return nil
}

// Teams converts the sheet's team lines into scoring input.
func (s *Sheet) Teams() scoring.Teams {
	teams := make(scoring.Teams, len(s.TeamEntries))
	for id, t := range s.TeamEntries {
		teams[id] = scoring.TeamRecord{Zone: t.Zone, Moved: t.Moved}
	}
	return teams
}

// Arena converts the sheet's zones into scoring input.
func (s *Sheet) Arena() scoring.Arena {
	arena := make(scoring.Arena, len(s.Zones))
	for zone, entry := range s.Zones {
		arena[zone] = scoring.ZoneRecord{Tokens: entry.Tokens}
	}
	return arena
}

// ExtraData returns the value passed to Scorer.Validate. It is nil when the
// sheet has no extra section.
func (s *Sheet) ExtraData() any {
	if len(s.Extra) == 0 {
		return nil
	}
	return s.Extra
}

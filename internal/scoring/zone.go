package scoring

import (
	"fmt"
	"strconv"
)

// otherLabel is the textual form of the catch-all zone.
const otherLabel = "other"

// Zone identifies a region of the arena: either a numbered home corner or
// the catch-all "other" zone.
//
// Zone is comparable and is used directly as the key of Arena. The zero
// value is corner 0.
type Zone struct {
	corner int
	other  bool
}

// Other is the catch-all zone outside every home corner.
var Other = Zone{other: true}

// Corner returns the home corner zone with index i.
func Corner(i int) Zone {
	return Zone{corner: i}
}

// IsOther reports whether z is the catch-all zone.
func (z Zone) IsOther() bool {
	return z.other
}

// Corner returns the corner index and true, or 0 and false for Other.
func (z Zone) Corner() (int, bool) {
	if z.other {
		return 0, false
	}
	return z.corner, true
}

// String renders corners as their index and the catch-all zone as "other".
func (z Zone) String() string {
	if z.other {
		return otherLabel
	}
	return strconv.Itoa(z.corner)
}

// ParseZone parses the textual form produced by String.
// Corner indices must be non-negative.
func ParseZone(s string) (Zone, error) {
	if s == otherLabel {
		return Other, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return Zone{}, fmt.Errorf("invalid zone %q: must be a corner index or %q", s, otherLabel)
	}
	return Corner(i), nil
}

// MarshalText implements encoding.TextMarshaler so Zone works as a JSON map key.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

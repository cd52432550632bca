package nearest

import "fmt"

// Rounding selects which key a lookup resolves to when there is no exact match.
type Rounding int

const (
	// Nearest picks the key closest to the request. On a tie between the key
	// below and the key above, the lower key wins.
	Nearest Rounding = iota

	// Up picks the smallest key greater than or equal to the request.
	Up

	// Down picks the largest key less than or equal to the request.
	Down
)

// Valid reports whether r is one of the defined modes.
func (r Rounding) Valid() bool {
	return r >= Nearest && r <= Down
}

func (r Rounding) String() string {
	switch r {
	case Nearest:
		return "nearest"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding parses the names printed by Rounding.String.
func ParseRounding(s string) (Rounding, error) {
	for _, r := range []Rounding{Nearest, Up, Down} {
		if r.String() == s {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRounding, s)
}

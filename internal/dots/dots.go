// Package dots models the geometry of the puzzle: single cells, cell sets,
// and the rigid items (shapes and two-sided grids) placed on the board via
// flip, quarter-turn rotation and translation.
package dots

import "errors"

var (
	// ErrInvalidGeometry reports malformed cell coordinates at construction.
	ErrInvalidGeometry = errors.New("dots must have non-negative row and column")
	// ErrInvalidPlacement reports a cell set that matches no configuration.
	ErrInvalidPlacement = errors.New("dots do not correspond to any configuration")
)

// Dot is a single cell position, row-major with the origin at the top left.
type Dot struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the dot translated by o.
func (d Dot) Add(o Dot) Dot { return Dot{Row: d.Row + o.Row, Col: d.Col + o.Col} }

// Config places a pattern on the board: flip parity, number of clockwise
// quarter turns, and the translation of the pattern's bounding box origin.
type Config struct {
	Flips     int `json:"flips"`
	Rotations int `json:"rotations"`
	Location  Dot `json:"location"`
}

func (c Config) normalized() Config {
	c.Flips = floorMod(c.Flips, 2)
	c.Rotations = floorMod(c.Rotations, 4)
	return c
}

// floorMod is the modulus with the sign of the divisor, so negative rotation
// counts wrap the same way they do when counting turns on a physical piece.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Set is an unordered set of dots.
type Set map[Dot]struct{}

// NewSet builds a set from the given dots.
func NewSet(ds ...Dot) Set {
	s := make(Set, len(ds))
	for _, d := range ds {
		s[d] = struct{}{}
	}
	return s
}

func (s Set) Add(d Dot)           { s[d] = struct{}{} }
func (s Set) Contains(d Dot) bool { _, ok := s[d]; return ok }
func (s Set) Len() int            { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for d := range s {
		c[d] = struct{}{}
	}
	return c
}

// Union returns a new set holding every dot of s and o.
func (s Set) Union(o Set) Set {
	u := make(Set, len(s)+len(o))
	for d := range s {
		u[d] = struct{}{}
	}
	for d := range o {
		u[d] = struct{}{}
	}
	return u
}

// Minus returns a new set holding the dots of s that are not in o.
func (s Set) Minus(o Set) Set {
	m := make(Set, len(s))
	for d := range s {
		if !o.Contains(d) {
			m[d] = struct{}{}
		}
	}
	return m
}

// SubsetOf reports whether every dot of s is in o.
func (s Set) SubsetOf(o Set) bool {
	for d := range s {
		if !o.Contains(d) {
			return false
		}
	}
	return true
}

// Disjoint reports whether s and o share no dot.
func (s Set) Disjoint(o Set) bool {
	small, large := s, o
	if len(o) < len(s) {
		small, large = o, s
	}
	for d := range small {
		if large.Contains(d) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold exactly the same dots.
func (s Set) Equal(o Set) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Min returns the per-axis minima of s: the smallest row and the smallest
// column, taken independently. It anchors reverse mapping of placements.
func (s Set) Min() Dot {
	first := true
	var m Dot
	for d := range s {
		if first {
			m = d
			first = false
			continue
		}
		if d.Row < m.Row {
			m.Row = d.Row
		}
		if d.Col < m.Col {
			m.Col = d.Col
		}
	}
	return m
}

// Max returns the per-axis maxima of s.
func (s Set) Max() Dot {
	first := true
	var m Dot
	for d := range s {
		if first {
			m = d
			first = false
			continue
		}
		if d.Row > m.Row {
			m.Row = d.Row
		}
		if d.Col > m.Col {
			m.Col = d.Col
		}
	}
	return m
}

// BoundingBox returns every dot in the minimal axis-aligned rectangle
// covering s.
func BoundingBox(s Set) Set {
	lo, hi := s.Min(), s.Max()
	box := make(Set, (hi.Row-lo.Row+1)*(hi.Col-lo.Col+1))
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			box[Dot{Row: r, Col: c}] = struct{}{}
		}
	}
	return box
}

// --- rigid transforms over a pattern's h x w bounding box ---

func flippedVertically(s Set, height int) Set {
	out := make(Set, len(s))
	for d := range s {
		out[Dot{Row: height - 1 - d.Row, Col: d.Col}] = struct{}{}
	}
	return out
}

func rotated90Clockwise(s Set, height int) Set {
	out := make(Set, len(s))
	for d := range s {
		out[Dot{Row: d.Col, Col: height - 1 - d.Row}] = struct{}{}
	}
	return out
}

func rotated180(s Set, height, width int) Set {
	out := make(Set, len(s))
	for d := range s {
		out[Dot{Row: height - 1 - d.Row, Col: width - 1 - d.Col}] = struct{}{}
	}
	return out
}

func rotated90Counterclockwise(s Set, width int) Set {
	out := make(Set, len(s))
	for d := range s {
		out[Dot{Row: width - 1 - d.Col, Col: d.Row}] = struct{}{}
	}
	return out
}

func rotated(s Set, times, height, width int) Set {
	switch floorMod(times, 4) {
	case 1:
		return rotated90Clockwise(s, height)
	case 2:
		return rotated180(s, height, width)
	case 3:
		return rotated90Counterclockwise(s, width)
	default:
		return s
	}
}

func translated(s Set, by Dot) Set {
	out := make(Set, len(s))
	for d := range s {
		out[d.Add(by)] = struct{}{}
	}
	return out
}

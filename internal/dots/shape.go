package dots

import "fmt"

// Shape is a rigid puzzle piece. Its identity is the canonical
// (untransformed) dot pattern, fixed at construction; the current placement
// is a separate Config that mutates only through SetConfig. Equality and
// hashing of shapes must only ever consult the canonical pattern.
type Shape struct {
	name    string
	color   string
	initial Set
	height  int
	width   int

	initialConfig Config
	cfg           Config
	current       Set

	// memoized by UniqueConfigsAt, nil until first use
	unique []Config
}

// NewShape builds a shape from its canonical pattern. Every dot must have
// non-negative coordinates; the pattern must be non-empty.
func NewShape(name, color string, pattern []Dot, initial Config) (*Shape, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("shape %q has no dots: %w", name, ErrInvalidGeometry)
	}
	for _, d := range pattern {
		if d.Row < 0 || d.Col < 0 {
			return nil, fmt.Errorf("shape %q dot %v: %w", name, d, ErrInvalidGeometry)
		}
	}
	s := &Shape{
		name:          name,
		color:         color,
		initial:       NewSet(pattern...),
		initialConfig: initial,
	}
	max := s.initial.Max()
	s.height, s.width = max.Row+1, max.Col+1
	s.Reset()
	return s, nil
}

func (s *Shape) Name() string  { return s.name }
func (s *Shape) Color() string { return s.color }
func (s *Shape) Len() int      { return len(s.initial) }

// Config returns the current placement.
func (s *Shape) Config() Config { return s.cfg }

// Dots returns the currently occupied dot set. The returned set is shared;
// callers must not mutate it.
func (s *Shape) Dots() Set { return s.current }

func (s *Shape) Contains(d Dot) bool { return s.current.Contains(d) }

// Equal reports pattern identity: two shapes are equal iff their canonical
// patterns match, independent of current placement.
func (s *Shape) Equal(o *Shape) bool { return s.initial.Equal(o.initial) }

// Reset restores the shape to its initial placement.
func (s *Shape) Reset() { s.SetConfig(s.initialConfig) }

// SetConfig is the only operation that moves the shape. All movement goes
// through it; flips and rotations are normalized to their canonical ranges.
func (s *Shape) SetConfig(cfg Config) {
	s.cfg = cfg.normalized()
	s.current = s.Configured(s.cfg)
}

// Flip mirrors the shape. Flipping negates the rotation sense, so a flip
// followed by a clockwise turn looks the same as turning first and then
// flipping the result.
func (s *Shape) Flip() {
	s.SetConfig(Config{Flips: s.cfg.Flips + 1, Rotations: -s.cfg.Rotations, Location: s.cfg.Location})
}

// Rotate turns the shape a quarter turn, clockwise or counterclockwise.
func (s *Shape) Rotate(clockwise bool) {
	turn := 1
	if !clockwise {
		turn = -1
	}
	s.SetConfig(Config{Flips: s.cfg.Flips, Rotations: s.cfg.Rotations + turn, Location: s.cfg.Location})
}

// Move translates the shape by delta.
func (s *Shape) Move(delta Dot) {
	s.SetConfig(Config{Flips: s.cfg.Flips, Rotations: s.cfg.Rotations, Location: s.cfg.Location.Add(delta)})
}

// Configured returns the dot set occupied under cfg: the canonical pattern
// flipped, then rotated, then translated, in that fixed order. Reflection
// formulas use the canonical bounding-box height and width.
func (s *Shape) Configured(cfg Config) Set {
	cfg = cfg.normalized()
	pattern := s.initial
	if cfg.Flips == 1 {
		pattern = flippedVertically(pattern, s.height)
	}
	pattern = rotated(pattern, cfg.Rotations, s.height, s.width)
	return translated(pattern, cfg.Location)
}

// UniqueConfigsAt enumerates the placements at location that produce
// geometrically distinct patterns: all 8 flip/rotation combinations at the
// origin, deduplicated by resulting dot set, re-anchored to location. The
// result count is 8 divided by the shape's symmetry group order. The
// origin-relative enumeration is computed once and memoized.
func (s *Shape) UniqueConfigsAt(location Dot) []Config {
	if s.unique == nil {
		var patterns []Set
		for flips := 0; flips < 2; flips++ {
			for rotations := 0; rotations < 4; rotations++ {
				cfg := Config{Flips: flips, Rotations: rotations}
				pattern := s.Configured(cfg)
				seen := false
				for _, p := range patterns {
					if p.Equal(pattern) {
						seen = true
						break
					}
				}
				if !seen {
					patterns = append(patterns, pattern)
					s.unique = append(s.unique, cfg)
				}
			}
		}
	}
	out := make([]Config, len(s.unique))
	for i, cfg := range s.unique {
		cfg.Location = location
		out[i] = cfg
	}
	return out
}

// SetDots reverse-maps a concrete dot set to a placement: it searches the
// unique configurations anchored at the set's per-axis minima and adopts the
// one reproducing the input exactly.
func (s *Shape) SetDots(target Set) error {
	for _, cfg := range s.UniqueConfigsAt(target.Min()) {
		if s.Configured(cfg).Equal(target) {
			s.SetConfig(cfg)
			return nil
		}
	}
	return fmt.Errorf("shape %q: %w", s.name, ErrInvalidPlacement)
}

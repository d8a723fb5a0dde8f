package dots

import (
	"errors"
	"testing"
)

func mustShape(t *testing.T, name string, pattern []Dot) *Shape {
	t.Helper()
	s, err := NewShape(name, "#FFFFFF", pattern, Config{})
	if err != nil {
		t.Fatalf("NewShape(%s) failed: %v", name, err)
	}
	return s
}

// lShape has no rotational or reflective symmetry.
func lShape(t *testing.T) *Shape {
	return mustShape(t, "l", []Dot{{0, 0}, {0, 1}, {0, 2}, {1, 0}})
}

// sShape is invariant under 180 degree rotation only.
func sShape(t *testing.T) *Shape {
	return mustShape(t, "s", []Dot{{0, 0}, {0, 1}, {1, 1}, {1, 2}})
}

func TestNewShapeRejectsBadDots(t *testing.T) {
	if _, err := NewShape("neg", "", []Dot{{-1, 0}}, Config{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("want ErrInvalidGeometry, got %v", err)
	}
	if _, err := NewShape("empty", "", nil, Config{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("want ErrInvalidGeometry for empty pattern, got %v", err)
	}
}

func TestConfiguredPreservesDotCount(t *testing.T) {
	s := lShape(t)
	for flips := 0; flips < 2; flips++ {
		for rotations := -4; rotations <= 4; rotations++ {
			cfg := Config{Flips: flips, Rotations: rotations, Location: Dot{Row: 3, Col: 7}}
			if got := s.Configured(cfg).Len(); got != s.Len() {
				t.Fatalf("config %+v: got %d dots, want %d", cfg, got, s.Len())
			}
		}
	}
}

func TestConfiguredAppliesFlipThenRotationThenTranslation(t *testing.T) {
	s := lShape(t)
	got := s.Configured(Config{Flips: 1, Rotations: 1, Location: Dot{Row: 2, Col: 3}})
	want := NewSet(Dot{2, 3}, Dot{3, 3}, Dot{4, 3}, Dot{2, 4})
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUniqueConfigCounts(t *testing.T) {
	cases := []struct {
		name    string
		pattern []Dot
		want    int
	}{
		{"asymmetric", []Dot{{0, 0}, {0, 1}, {0, 2}, {1, 0}}, 8},
		{"180-symmetric", []Dot{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, 4},
		{"square", []Dot{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, 1},
		{"single dot", []Dot{{0, 0}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustShape(t, tc.name, tc.pattern)
			if got := len(s.UniqueConfigsAt(Dot{})); got != tc.want {
				t.Fatalf("got %d unique configs, want %d", got, tc.want)
			}
		})
	}
}

func TestUniqueConfigsDeterministic(t *testing.T) {
	s := lShape(t)
	loc := Dot{Row: 5, Col: 5}
	first := s.UniqueConfigsAt(loc)
	second := s.UniqueConfigsAt(loc)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	// same set of resulting patterns, order irrelevant
	for _, cfg := range first {
		found := false
		for _, other := range second {
			if s.Configured(cfg).Equal(s.Configured(other)) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("config %+v missing from second enumeration", cfg)
		}
	}
	for _, cfg := range first {
		if cfg.Location != loc {
			t.Fatalf("config %+v not anchored at %v", cfg, loc)
		}
	}
}

func TestSetDotsRoundTrip(t *testing.T) {
	s := sShape(t)
	s.Flip()
	s.Rotate(true)
	s.Move(Dot{Row: 4, Col: 2})
	target := s.Dots().Clone()

	other := sShape(t)
	if err := other.SetDots(target); err != nil {
		t.Fatalf("SetDots failed: %v", err)
	}
	if !other.Dots().Equal(target) {
		t.Fatalf("got %v, want %v", other.Dots(), target)
	}
}

func TestSetDotsRejectsForeignPattern(t *testing.T) {
	s := sShape(t)
	err := s.SetDots(NewSet(Dot{0, 0}, Dot{0, 1}, Dot{0, 2}, Dot{0, 3}))
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("want ErrInvalidPlacement, got %v", err)
	}
}

func TestFlipAndRotateAreInvolutions(t *testing.T) {
	s := lShape(t)
	s.Move(Dot{Row: 2, Col: 2})
	before := s.Dots().Clone()

	s.Flip()
	s.Flip()
	if !s.Dots().Equal(before) {
		t.Fatalf("double flip moved the shape: %v", s.Dots())
	}
	for i := 0; i < 4; i++ {
		s.Rotate(true)
	}
	if !s.Dots().Equal(before) {
		t.Fatalf("four rotations moved the shape: %v", s.Dots())
	}
	s.Rotate(false)
	s.Rotate(true)
	if !s.Dots().Equal(before) {
		t.Fatalf("rotate there and back moved the shape: %v", s.Dots())
	}
}

func TestConfigNormalization(t *testing.T) {
	s := lShape(t)
	s.SetConfig(Config{Flips: 3, Rotations: -1})
	cfg := s.Config()
	if cfg.Flips != 1 || cfg.Rotations != 3 {
		t.Fatalf("config not normalized: %+v", cfg)
	}
}

func TestShapeEqualIgnoresPlacement(t *testing.T) {
	a := sShape(t)
	b := sShape(t)
	b.Flip()
	b.Move(Dot{Row: 9, Col: 9})
	if !a.Equal(b) {
		t.Fatal("shapes with identical patterns must stay equal across placements")
	}
	if a.Equal(lShape(t)) {
		t.Fatal("shapes with different patterns must not be equal")
	}
}

func TestResetRestoresInitialConfig(t *testing.T) {
	s, err := NewShape("r", "", []Dot{{0, 0}, {0, 1}}, Config{Location: Dot{Row: 1, Col: 1}})
	if err != nil {
		t.Fatal(err)
	}
	initial := s.Dots().Clone()
	s.Rotate(true)
	s.Move(Dot{Row: 3, Col: 3})
	s.Reset()
	if !s.Dots().Equal(initial) {
		t.Fatalf("reset got %v, want %v", s.Dots(), initial)
	}
}

package dots

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, front, back []Dot) *Grid {
	t.Helper()
	g, err := NewGrid("g", front, back, Config{})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGridRejectsClosedDotsOutsideTile(t *testing.T) {
	if _, err := NewGrid("bad", []Dot{{0, GridSize}}, nil, Config{}); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("want ErrInvalidGeometry, got %v", err)
	}
}

func TestGridOpenDotsAreBoxMinusActiveSide(t *testing.T) {
	g := mustGrid(t, []Dot{{0, 0}}, []Dot{{1, 1}, {2, 2}})
	open := g.OpenDots()
	if open.Len() != GridSize*GridSize-1 {
		t.Fatalf("got %d open dots, want %d", open.Len(), GridSize*GridSize-1)
	}
	if open.Contains(Dot{0, 0}) {
		t.Fatal("closed dot reported open")
	}
}

func TestGridFlipSelectsOtherSide(t *testing.T) {
	g := mustGrid(t, []Dot{{0, 0}}, []Dot{{1, 1}, {2, 2}})
	g.Flip()
	open := g.OpenDots()
	if open.Len() != GridSize*GridSize-2 {
		t.Fatalf("got %d open dots after flip, want %d", open.Len(), GridSize*GridSize-2)
	}
	if open.Contains(Dot{1, 1}) || open.Contains(Dot{2, 2}) {
		t.Fatal("back side closed dots reported open after flip")
	}
	if !open.Contains(Dot{0, 0}) {
		t.Fatal("front side closed dot should be open after flip")
	}
}

func TestGridRotationTurnsClosedPattern(t *testing.T) {
	g := mustGrid(t, []Dot{{0, 1}}, nil)
	g.Rotate(true)
	want := Dot{Row: 1, Col: GridSize - 1}
	if !g.ClosedDots().Contains(want) {
		t.Fatalf("closed dots %v should contain %v after clockwise turn", g.ClosedDots(), want)
	}
}

func TestGridMoveTranslatesEverything(t *testing.T) {
	g := mustGrid(t, []Dot{{0, 0}}, nil)
	g.Move(Dot{Row: 2, Col: 3})
	if !g.ClosedDots().Contains(Dot{2, 3}) {
		t.Fatalf("closed dots %v should follow the move", g.ClosedDots())
	}
	if g.Dots().Len() != GridSize*GridSize {
		t.Fatalf("a grid always occupies its full box")
	}
	if !g.Contains(Dot{5, 6}) || g.Contains(Dot{6, 7}) {
		t.Fatal("box membership wrong after move")
	}
}

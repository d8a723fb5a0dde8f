package game

import (
	"fmt"

	"svw.info/quadrillion/internal/dots"
)

// Item is anything placeable on the board: a shape or a grid.
type Item interface {
	Name() string
	Config() dots.Config
	SetConfig(cfg dots.Config)
	Reset()
	Dots() dots.Set
	Contains(d dots.Dot) bool
}

// strategy holds the shared placement bookkeeping for one class of items.
// Released items are the class members not currently picked.
type strategy struct {
	dim    dots.Dot
	items  []Item
	picked map[Item]bool
}

func newStrategy(dim dots.Dot, items []Item) strategy {
	st := strategy{dim: dim, items: items, picked: make(map[Item]bool, len(items))}
	st.pickAll()
	return st
}

func (st *strategy) pickAll() {
	for _, it := range st.items {
		st.picked[it] = true
	}
}

func (st *strategy) clearPicked() { st.picked = make(map[Item]bool, len(st.items)) }

func (st *strategy) setPicked(items []Item) {
	st.clearPicked()
	for _, it := range items {
		st.picked[it] = true
	}
}

func (st *strategy) pickedItems() []Item {
	var out []Item
	for _, it := range st.items {
		if st.picked[it] {
			out = append(out, it)
		}
	}
	return out
}

func (st *strategy) releasedItems() []Item {
	var out []Item
	for _, it := range st.items {
		if !st.picked[it] {
			out = append(out, it)
		}
	}
	return out
}

func (st *strategy) releasedDots() dots.Set {
	out := dots.NewSet()
	for _, it := range st.releasedItems() {
		for d := range it.Dots() {
			out.Add(d)
		}
	}
	return out
}

func (st *strategy) getAt(d dots.Dot) Item {
	for _, it := range st.releasedItems() {
		if it.Contains(d) {
			return it
		}
	}
	return nil
}

func (st *strategy) onBoard(it Item) bool {
	for d := range it.Dots() {
		if d.Row < 0 || d.Row >= st.dim.Row || d.Col < 0 || d.Col >= st.dim.Col {
			return false
		}
	}
	return true
}

// overlapsReleased reports whether any dot of it lies on a released item of
// this class.
func (st *strategy) overlapsReleased(it Item) bool {
	for _, released := range st.releasedItems() {
		if !it.Dots().Disjoint(released.Dots()) {
			return true
		}
	}
	return false
}

// separated reports whether the picked items occupy pairwise disjoint dots.
func (st *strategy) separated() bool {
	total := 0
	all := dots.NewSet()
	for _, it := range st.pickedItems() {
		for d := range it.Dots() {
			all.Add(d)
			total++
		}
	}
	return all.Len() == total
}

// baseReleasable holds the class-independent release rules: every picked
// item on the board, none overlapping a released item of the same class,
// and the picked items pairwise separated.
func (st *strategy) baseReleasable() bool {
	for _, it := range st.pickedItems() {
		if !st.onBoard(it) || st.overlapsReleased(it) {
			return false
		}
	}
	return st.separated()
}

// gridStrategy places the board tiles. Tiles may not be released under a
// released shape, and may not be picked from under one.
type gridStrategy struct {
	strategy
	grids  []*dots.Grid
	shapes *shapeStrategy
}

func (g *gridStrategy) releasable() bool {
	if !g.baseReleasable() {
		return false
	}
	for _, it := range g.pickedItems() {
		if g.shapes.overlapsReleased(it) {
			return false
		}
	}
	return true
}

func (g *gridStrategy) pickable(items []Item) bool {
	all := true
	for _, it := range items {
		if !g.picked[it] {
			all = false
			break
		}
	}
	if all {
		return true
	}
	for _, it := range items {
		if g.shapes.overlapsReleased(it) {
			return false
		}
	}
	return true
}

func (g *gridStrategy) pick(items []Item) error {
	if !g.pickable(items) {
		return fmt.Errorf("grids are under released shapes: %w", ErrIllegalPick)
	}
	g.setPicked(items)
	return nil
}

func (g *gridStrategy) release() error {
	if !g.releasable() {
		return fmt.Errorf("grids: %w", ErrIllegalRelease)
	}
	g.clearPicked()
	return nil
}

// releasedOpenDots returns every coverable dot of the released tiles.
func (g *gridStrategy) releasedOpenDots() dots.Set {
	out := dots.NewSet()
	for _, grid := range g.grids {
		if g.picked[grid] {
			continue
		}
		for d := range grid.OpenDots() {
			out.Add(d)
		}
	}
	return out
}

// isOnReleasedOpenDots reports whether it sits entirely on coverable dots of
// released tiles.
func (g *gridStrategy) isOnReleasedOpenDots(it Item) bool {
	return it.Dots().SubsetOf(g.releasedOpenDots())
}

// shapeStrategy places the puzzle pieces. A shape is releasable either
// entirely on released open grid dots or entirely off the grid area; it is
// unplaced when released clear of every released grid.
type shapeStrategy struct {
	strategy
	shapes []*dots.Shape
	grids  *gridStrategy
}

func (s *shapeStrategy) releasable() bool {
	if !s.baseReleasable() {
		return false
	}
	for _, it := range s.pickedItems() {
		if !s.grids.isOnReleasedOpenDots(it) && s.grids.overlapsReleased(it) {
			return false
		}
	}
	return true
}

func (s *shapeStrategy) pick(items []Item) {
	s.setPicked(items)
}

func (s *shapeStrategy) release() error {
	if !s.releasable() {
		return fmt.Errorf("shapes: %w", ErrIllegalRelease)
	}
	s.clearPicked()
	return nil
}

func (s *shapeStrategy) releasedUnplaced() []*dots.Shape {
	var out []*dots.Shape
	for _, shape := range s.shapes {
		if !s.picked[shape] && !s.grids.overlapsReleased(shape) {
			out = append(out, shape)
		}
	}
	return out
}

// Package game implements the Quadrillion board: four two-sided grid tiles
// and twelve shapes on a shared dot space, with a pick/release interaction
// model. Picked items are locked for exclusive mutation; releasing commits
// and validates their new placement against the per-class rules.
package game

import (
	"errors"
	"fmt"

	"svw.info/quadrillion/internal/dots"
)

// Game is the board collaborator. It is not safe for concurrent use; the
// pick lock serializes interactions by rejecting a second pick.
type Game struct {
	dim    dots.Dot
	shapes []*dots.Shape
	grids  []*dots.Grid
	byName map[string]Item

	shapeSt *shapeStrategy
	gridSt  *gridStrategy

	isPicked bool
	momentos []momento
}

// momento is a saved placement snapshot, used to restore an item's prior
// configuration when an in-progress interaction is aborted.
type momento struct {
	item Item
	cfg  dots.Config
}

// New builds a game over a dot space of dim rows x columns. The initial
// configurations of all items must form a legal board.
func New(dim dots.Dot, shapes []*dots.Shape, grids []*dots.Grid) (*Game, error) {
	g := &Game{
		dim:    dim,
		shapes: shapes,
		grids:  grids,
		byName: make(map[string]Item, len(shapes)+len(grids)),
	}
	var shapeItems, gridItems []Item
	for _, s := range shapes {
		shapeItems = append(shapeItems, s)
	}
	for _, gr := range grids {
		gridItems = append(gridItems, gr)
	}
	for _, it := range append(append([]Item{}, shapeItems...), gridItems...) {
		if _, dup := g.byName[it.Name()]; dup {
			return nil, fmt.Errorf("duplicate item name %q: %w", it.Name(), dots.ErrInvalidGeometry)
		}
		g.byName[it.Name()] = it
	}
	g.gridSt = &gridStrategy{strategy: newStrategy(dim, gridItems), grids: grids}
	g.shapeSt = &shapeStrategy{strategy: newStrategy(dim, shapeItems), shapes: shapes}
	g.gridSt.shapes = g.shapeSt
	g.shapeSt.grids = g.gridSt
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns every item to its initial configuration.
func (g *Game) Reset() error {
	for _, it := range g.allItems() {
		it.Reset()
	}
	g.isPicked = false
	g.momentos = nil
	return g.revalidate()
}

// revalidate re-releases every item, checking the whole board's legality.
func (g *Game) revalidate() error {
	g.gridSt.pickAll()
	g.shapeSt.pickAll()
	if err := g.gridSt.release(); err != nil {
		return fmt.Errorf("item configurations are not legal: %w", err)
	}
	if err := g.shapeSt.release(); err != nil {
		return fmt.Errorf("item configurations are not legal: %w", err)
	}
	return nil
}

// Pick locks items for exclusive mutation. It must be called before any item
// moves. Items of unknown provenance are ignored.
func (g *Game) Pick(items []Item) error {
	if g.isPicked {
		return fmt.Errorf("cannot pick before releasing already picked items: %w", ErrState)
	}
	shapes, grids := g.separate(items)
	g.shapeSt.pick(shapes)
	if err := g.gridSt.pick(grids); err != nil {
		g.shapeSt.clearPicked()
		return err
	}
	g.captureMomentos(items)
	g.isPicked = true
	return nil
}

// Release commits the picked items at their current configurations. On an
// illegal configuration the pick lock is kept so the caller can retry or
// unpick.
func (g *Game) Release() error {
	if !g.isPicked {
		return fmt.Errorf("cannot release while no picked items: %w", ErrState)
	}
	pickedGrids := g.gridSt.pickedItems()
	err := g.gridSt.release()
	if err == nil {
		if err = g.shapeSt.release(); err != nil {
			// restore the grid picks so the lock stays whole
			g.gridSt.setPicked(pickedGrids)
		}
	}
	if err != nil {
		return err
	}
	g.isPicked = false
	g.momentos = nil
	return nil
}

// Unpick aborts the interaction, returning the picked items to the
// configurations captured at pick time.
func (g *Game) Unpick() error {
	if !g.isPicked {
		return fmt.Errorf("cannot unpick while no picked items: %w", ErrState)
	}
	for _, m := range g.momentos {
		m.item.SetConfig(m.cfg)
	}
	if err := g.Release(); err != nil {
		if errors.Is(err, ErrIllegalRelease) {
			return fmt.Errorf("momentos were not captured at legal configurations: %w", ErrInconsistent)
		}
		return err
	}
	return nil
}

// GetAt returns the visible item at the given dot, shapes first.
func (g *Game) GetAt(d dots.Dot) (Item, error) {
	if it := g.shapeSt.getAt(d); it != nil {
		return it, nil
	}
	if it := g.gridSt.getAt(d); it != nil {
		return it, nil
	}
	return nil, fmt.Errorf("dot %v: %w", d, ErrNoItem)
}

// IsWon reports whether nothing is locked and no coverable dot remains
// uncovered.
func (g *Game) IsWon() bool {
	return !g.isPicked && g.ReleasedEmptyGridDots().Len() == 0
}

// IsPicked reports whether an interaction is in flight.
func (g *Game) IsPicked() bool { return g.isPicked }

func (g *Game) Dim() dots.Dot          { return g.dim }
func (g *Game) Shapes() []*dots.Shape  { return g.shapes }
func (g *Game) Grids() []*dots.Grid    { return g.grids }
func (g *Game) AllShapes() []*dots.Shape {
	return append([]*dots.Shape(nil), g.shapes...)
}

// ReleasedEmptyGridDots returns the currently empty, coverable dots: open
// dots of released grids not occupied by a released shape.
func (g *Game) ReleasedEmptyGridDots() dots.Set {
	return g.gridSt.releasedOpenDots().Minus(g.shapeSt.releasedDots())
}

// ReleasedUnplacedShapes returns the released shapes not occupying any grid.
func (g *Game) ReleasedUnplacedShapes() []*dots.Shape {
	return g.shapeSt.releasedUnplaced()
}

// PickShapes locks the given shapes; it is the Board surface assistants use.
func (g *Game) PickShapes(shapes []*dots.Shape) error {
	items := make([]Item, len(shapes))
	for i, s := range shapes {
		items[i] = s
	}
	return g.Pick(items)
}

func (g *Game) allItems() []Item {
	out := make([]Item, 0, len(g.shapes)+len(g.grids))
	for _, s := range g.shapes {
		out = append(out, s)
	}
	for _, gr := range g.grids {
		out = append(out, gr)
	}
	return out
}

// separate splits items into this game's shapes and grids, dropping
// anything it does not own.
func (g *Game) separate(items []Item) (shapes, grids []Item) {
	for _, it := range items {
		owned, ok := g.byName[it.Name()]
		if !ok || owned != it {
			continue
		}
		switch it.(type) {
		case *dots.Shape:
			shapes = append(shapes, it)
		case *dots.Grid:
			grids = append(grids, it)
		}
	}
	return shapes, grids
}

func (g *Game) captureMomentos(items []Item) {
	g.momentos = g.momentos[:0]
	for _, it := range items {
		g.momentos = append(g.momentos, momento{item: it, cfg: it.Config()})
	}
}

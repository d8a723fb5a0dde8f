package dots

import "fmt"

// GridSize is the side length of a board tile.
const GridSize = 4

// Grid is a two-sided board tile. Each side closes some of the tile's dots;
// the flip parity of the current Config selects which side faces up. Open
// dots are the tile's bounding box minus the active side's closed pattern.
type Grid struct {
	name   string
	height int
	width  int
	front  Set // closed dots when flips is even
	back   Set // closed dots when flips is odd

	initialConfig Config
	cfg           Config
}

// NewGrid builds a GridSize x GridSize tile from the closed-dot patterns of
// its two sides. Closed dots must lie inside the tile.
func NewGrid(name string, frontClosed, backClosed []Dot, initial Config) (*Grid, error) {
	g := &Grid{
		name:          name,
		height:        GridSize,
		width:         GridSize,
		front:         NewSet(frontClosed...),
		back:          NewSet(backClosed...),
		initialConfig: initial,
	}
	for d := range g.front.Union(g.back) {
		if d.Row < 0 || d.Col < 0 || d.Row >= g.height || d.Col >= g.width {
			return nil, fmt.Errorf("grid %q closed dot %v outside tile: %w", name, d, ErrInvalidGeometry)
		}
	}
	g.Reset()
	return g, nil
}

func (g *Grid) Name() string { return g.name }
func (g *Grid) Len() int     { return g.height * g.width }

func (g *Grid) Config() Config { return g.cfg }

// Equal reports identity by both sides' canonical closed patterns.
func (g *Grid) Equal(o *Grid) bool {
	return g.front.Equal(o.front) && g.back.Equal(o.back)
}

// Reset restores the grid to its initial placement.
func (g *Grid) Reset() { g.SetConfig(g.initialConfig) }

// SetConfig is the only operation that moves the grid.
func (g *Grid) SetConfig(cfg Config) { g.cfg = cfg.normalized() }

// Flip turns the grid over, exposing the other side.
func (g *Grid) Flip() {
	g.SetConfig(Config{Flips: g.cfg.Flips + 1, Rotations: -g.cfg.Rotations, Location: g.cfg.Location})
}

// Rotate turns the grid a quarter turn.
func (g *Grid) Rotate(clockwise bool) {
	turn := 1
	if !clockwise {
		turn = -1
	}
	g.SetConfig(Config{Flips: g.cfg.Flips, Rotations: g.cfg.Rotations + turn, Location: g.cfg.Location})
}

// Move translates the grid by delta.
func (g *Grid) Move(delta Dot) {
	g.SetConfig(Config{Flips: g.cfg.Flips, Rotations: g.cfg.Rotations, Location: g.cfg.Location.Add(delta)})
}

// Configured returns every dot of the tile's bounding box under cfg. A grid
// occupies its whole box regardless of side.
func (g *Grid) Configured(cfg Config) Set {
	cfg = cfg.normalized()
	box := make(Set, g.height*g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			box[Dot{Row: r, Col: c}.Add(cfg.Location)] = struct{}{}
		}
	}
	return box
}

// Dots returns every dot of the tile at its current placement.
func (g *Grid) Dots() Set { return g.Configured(g.cfg) }

func (g *Grid) Contains(d Dot) bool {
	d = Dot{Row: d.Row - g.cfg.Location.Row, Col: d.Col - g.cfg.Location.Col}
	return d.Row >= 0 && d.Row < g.height && d.Col >= 0 && d.Col < g.width
}

// ClosedDots returns the active side's closed dots at the current placement.
// Flip parity selects the side; rotation then turns that side's pattern.
func (g *Grid) ClosedDots() Set {
	side := g.front
	if g.cfg.Flips == 1 {
		side = g.back
	}
	return translated(rotated(side, g.cfg.Rotations, g.height, g.width), g.cfg.Location)
}

// OpenDots returns the coverable dots: the tile's box minus the active
// side's closed dots.
func (g *Grid) OpenDots() Set { return g.Dots().Minus(g.ClosedDots()) }

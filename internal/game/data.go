package game

import "svw.info/quadrillion/internal/dots"

// Default inventory: twelve shapes (ten of five dots, one of four, one of
// three; 57 dots in total) and four two-sided 4x4 grids whose default
// active sides close seven dots, leaving 57 coverable. The dot space leaves
// a margin around the 8x8 grid block where shapes park between games.

// DefaultDim is the default dot space: 14 rows by 18 columns.
var DefaultDim = dots.Dot{Row: 14, Col: 18}

type shapeDef struct {
	name    string
	color   string
	pattern []dots.Dot
	initial dots.Config
}

type gridDef struct {
	name    string
	front   []dots.Dot
	back    []dots.Dot
	initial dots.Config
}

func at(row, col int) dots.Config {
	return dots.Config{Location: dots.Dot{Row: row, Col: col}}
}

var defaultShapes = []shapeDef{
	{"turquoise", "#40E0D0", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, at(0, 0)},
	{"maroon", "#8E354A", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, at(0, 2)},
	{"mint", "#98E0C8", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, at(0, 5)},
	{"olive", "#708238", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, at(0, 8)},
	{"pink", "#F26BAA", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, at(0, 11)},
	{"red", "#D32F2F", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 1}}, at(0, 14)},
	{"green", "#2E9E4F", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, at(3, 0)},
	{"lightblue", "#7EC8E3", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}, at(11, 0)},
	{"orange", "#F28C28", []dots.Dot{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, at(11, 3)},
	{"violet", "#7F52A0", []dots.Dot{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, at(11, 6)},
	{"yellow", "#F2C931", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 0}}, at(11, 9)},
	{"blue", "#1F77B4", []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}, at(11, 13)},
}

var defaultGrids = []gridDef{
	{
		name:    "grid1",
		front:   []dots.Dot{{Row: 1, Col: 1}},
		back:    []dots.Dot{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: 3, Col: 1}},
		initial: at(3, 5),
	},
	{
		name:    "grid2",
		front:   []dots.Dot{{Row: 0, Col: 3}, {Row: 2, Col: 0}},
		back:    []dots.Dot{{Row: 1, Col: 2}, {Row: 3, Col: 3}},
		initial: at(3, 9),
	},
	{
		name:    "grid3",
		front:   []dots.Dot{{Row: 0, Col: 0}, {Row: 3, Col: 2}},
		back:    []dots.Dot{{Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		initial: at(7, 5),
	},
	{
		name:    "grid4",
		front:   []dots.Dot{{Row: 1, Col: 3}, {Row: 2, Col: 1}},
		back:    []dots.Dot{{Row: 3, Col: 0}},
		initial: at(7, 9),
	},
}

// NewDefault builds the standard game.
func NewDefault() (*Game, error) {
	shapes := make([]*dots.Shape, 0, len(defaultShapes))
	for _, def := range defaultShapes {
		s, err := dots.NewShape(def.name, def.color, def.pattern, def.initial)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	grids := make([]*dots.Grid, 0, len(defaultGrids))
	for _, def := range defaultGrids {
		g, err := dots.NewGrid(def.name, def.front, def.back, def.initial)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return New(DefaultDim, shapes, grids)
}

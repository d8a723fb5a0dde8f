package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/quadrillion/internal/dots"
	"svw.info/quadrillion/internal/game"
)

// fixture builds an 8x10 board with one grid exposing a 3x3 open square at
// rows 2-4, columns 2-4, and the given shapes parked clear of it.
func fixture(t *testing.T, patterns map[string][]dots.Dot) *game.Game {
	t.Helper()
	grid, err := dots.NewGrid("g",
		[]dots.Dot{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}},
		nil,
		dots.Config{Location: dots.Dot{Row: 2, Col: 2}})
	require.NoError(t, err)

	var shapes []*dots.Shape
	park := dots.Dot{Row: 0, Col: 7}
	for _, name := range []string{"a", "b", "c"} {
		pattern, ok := patterns[name]
		if !ok {
			continue
		}
		s, err := dots.NewShape(name, "", pattern, dots.Config{Location: park})
		require.NoError(t, err)
		shapes = append(shapes, s)
		park = park.Add(dots.Dot{Row: 4})
	}
	g, err := game.New(dots.Dot{Row: 12, Col: 10}, shapes, []*dots.Grid{grid})
	require.NoError(t, err)
	return g
}

var (
	p5 = []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
	s4 = []dots.Dot{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
	o4 = []dots.Dot{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
)

func TestSolveTilesTheBoard(t *testing.T) {
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": s4})
	a := NewCSPAdapter(g, DefaultPruneParams(), nil)

	st, err := a.Solve(context.Background())
	require.NoError(t, err)
	assert.True(t, g.IsWon())
	assert.False(t, g.IsPicked())
	assert.Positive(t, st.Nodes)
}

func TestSolveReportsNoSolution(t *testing.T) {
	// a P-pentomino never leaves a square 4-dot hole in a 3x3 region
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": o4})
	a := NewCSPAdapter(g, DefaultPruneParams(), nil)

	_, err := a.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.False(t, g.IsPicked(), "a failed solve leaves nothing picked")
	assert.Len(t, g.ReleasedUnplacedShapes(), 2, "the board is restored")
}

func TestSolveFailsFastOnUncoverableCounts(t *testing.T) {
	// ten closed dots leave six open, unreachable by any shape size mix
	grid, err := dots.NewGrid("g",
		[]dots.Dot{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}},
		nil,
		dots.Config{Location: dots.Dot{Row: 2, Col: 2}})
	require.NoError(t, err)
	shape, err := dots.NewShape("a", "", p5, dots.Config{Location: dots.Dot{Row: 0, Col: 7}})
	require.NoError(t, err)
	g, err := game.New(dots.Dot{Row: 12, Col: 10}, []*dots.Shape{shape}, []*dots.Grid{grid})
	require.NoError(t, err)

	a := NewCSPAdapter(g, DefaultPruneParams(), nil)
	st, err := a.Solve(context.Background())
	assert.ErrorIs(t, err, ErrNoSolution)
	assert.Zero(t, st.Nodes, "pruned before any search node")
}

func TestHelpPlacesOneShapeAndCachesTheRest(t *testing.T) {
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": s4})
	a := NewCSPAdapter(g, DefaultPruneParams(), nil)

	st, err := a.Help(context.Background())
	require.NoError(t, err)
	assert.Positive(t, st.Nodes)
	assert.Len(t, g.ReleasedUnplacedShapes(), 1)
	assert.False(t, g.IsWon())

	// the remaining shape comes from the cached solution, no new search
	st, err = a.Solve(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Nodes)
	assert.True(t, g.IsWon())
}

func TestSolveRejectsSolvedBoard(t *testing.T) {
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": s4})
	a := NewCSPAdapter(g, DefaultPruneParams(), nil)
	_, err := a.Solve(context.Background())
	require.NoError(t, err)

	_, err = a.Solve(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = a.Help(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSolveRejectsPickedBoard(t *testing.T) {
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": s4})
	require.NoError(t, g.PickShapes(g.Shapes()[:1]))

	a := NewCSPAdapter(g, DefaultPruneParams(), nil)
	_, err := a.Solve(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSolveHonorsCancelledContext(t *testing.T) {
	g := fixture(t, map[string][]dots.Dot{"a": p5, "b": s4})
	a := NewCSPAdapter(g, DefaultPruneParams(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, g.IsPicked())
}

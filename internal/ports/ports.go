package ports

import (
	"context"
	"time"

	"svw.info/quadrillion/internal/dots"
	"svw.info/quadrillion/internal/game"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Board is the game surface an assistant drives. Picking locks a set of
// shapes for exclusive mutation; releasing commits and validates their new
// placement.
type Board interface {
	ReleasedUnplacedShapes() []*dots.Shape
	ReleasedEmptyGridDots() dots.Set
	AllShapes() []*dots.Shape
	PickShapes(shapes []*dots.Shape) error
	Release() error
	Unpick() error
	IsWon() bool
}

// Assistant computes coverings for a board. Solve commits every unplaced
// shape; Help commits a single one as a hint.
type Assistant interface {
	Solve(ctx context.Context) (Stats, error)
	Help(ctx context.Context) (Stats, error)
}

// LayoutStore persists and retrieves board layouts.
type LayoutStore interface {
	Save(ctx context.Context, l *game.Layout) error
	Load(ctx context.Context, id string) (*game.Layout, error)
	List(ctx context.Context) ([]game.LayoutMeta, error)
}

package game

import (
	"fmt"

	"svw.info/quadrillion/internal/dots"
)

// Layout is a persisted snapshot of every item's placement.
type Layout struct {
	ID        string                 `json:"id,omitempty"`
	Name      string                 `json:"name,omitempty"`
	CreatedAt int64                  `json:"createdAt,omitempty"`
	Items     map[string]dots.Config `json:"items"`
}

// LayoutMeta is a lightweight listing entry.
type LayoutMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// CurrentLayout snapshots the configuration of every item by name.
func (g *Game) CurrentLayout() map[string]dots.Config {
	out := make(map[string]dots.Config, len(g.byName))
	for name, it := range g.byName {
		out[name] = it.Config()
	}
	return out
}

// ApplyLayout moves items to the given configurations and validates the
// resulting board. Unknown item names are rejected; an illegal resulting
// board is reported and can be cleared with Reset.
func (g *Game) ApplyLayout(items map[string]dots.Config) error {
	if g.isPicked {
		return fmt.Errorf("cannot apply a layout while items are picked: %w", ErrState)
	}
	for name := range items {
		if _, ok := g.byName[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownItem)
		}
	}
	for name, cfg := range items {
		g.byName[name].SetConfig(cfg)
	}
	return g.revalidate()
}

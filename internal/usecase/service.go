package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/quadrillion/internal/game"
	"svw.info/quadrillion/internal/ports"
)

// Service wires the assistant and layout persistence around one game.
type Service struct {
	Assistant ports.Assistant
	Store     ports.LayoutStore
	Game      *game.Game
}

func NewService(a ports.Assistant, st ports.LayoutStore, g *game.Game) *Service {
	return &Service{Assistant: a, Store: st, Game: g}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context) (ports.Stats, error) {
	if u.Assistant == nil {
		return ports.Stats{}, errNotConfigured
	}
	return u.Assistant.Solve(ctx)
}

func (u *Service) Help(ctx context.Context) (ports.Stats, error) {
	if u.Assistant == nil {
		return ports.Stats{}, errNotConfigured
	}
	return u.Assistant.Help(ctx)
}

// Persistence

// SaveLayout snapshots the game under the given name and stores it.
func (u *Service) SaveLayout(ctx context.Context, name string) (*game.Layout, error) {
	if u.Store == nil || u.Game == nil {
		return nil, errNotConfigured
	}
	l := &game.Layout{
		Name:      name,
		CreatedAt: time.Now().Unix(),
		Items:     u.Game.CurrentLayout(),
	}
	if err := u.Store.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadLayout restores a stored layout onto the game.
func (u *Service) LoadLayout(ctx context.Context, id string) error {
	if u.Store == nil || u.Game == nil {
		return errNotConfigured
	}
	l, err := u.Store.Load(ctx, id)
	if err != nil {
		return err
	}
	return u.Game.ApplyLayout(l.Items)
}

func (u *Service) ListLayouts(ctx context.Context) ([]game.LayoutMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}

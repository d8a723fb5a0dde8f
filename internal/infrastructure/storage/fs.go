package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/quadrillion/internal/game"
)

// FS stores layouts as JSON files, one per layout, under a directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

// Save writes the layout, minting an ID when it has none.
func (s *FS) Save(ctx context.Context, l *game.Layout) error {
	if l == nil || len(l.Items) == 0 {
		return errors.New("invalid layout: no items")
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(l.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

func (s *FS) Load(ctx context.Context, id string) (*game.Layout, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out game.Layout
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List scans the directory, skipping anything unreadable.
func (s *FS) List(ctx context.Context) ([]game.LayoutMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []game.LayoutMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var l game.Layout
		if err := json.Unmarshal(data, &l); err != nil || l.ID == "" {
			continue
		}
		out = append(out, game.LayoutMeta{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt})
	}
	return out, nil
}

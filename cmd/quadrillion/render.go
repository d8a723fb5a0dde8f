package main

import (
	"log/slog"
	"os"
	"strings"

	"svw.info/quadrillion/internal/dots"
	"svw.info/quadrillion/internal/game"
)

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// renderBoard draws the dot space row by row: shapes as letters, open grid
// dots as '.', closed grid dots as 'x', bare board as spaces.
func renderBoard(g *game.Game) string {
	dim := g.Dim()
	rows := make([][]rune, dim.Row)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", dim.Col))
	}
	put := func(s dots.Set, c rune) {
		for d := range s {
			if d.Row >= 0 && d.Row < dim.Row && d.Col >= 0 && d.Col < dim.Col {
				rows[d.Row][d.Col] = c
			}
		}
	}
	for _, grid := range g.Grids() {
		put(grid.OpenDots(), '.')
		put(grid.ClosedDots(), 'x')
	}
	for i, shape := range g.Shapes() {
		put(shape.Dots(), rune('A'+i%26))
	}
	lines := make([]string, dim.Row)
	for r := range rows {
		lines[r] = string(rows[r])
	}
	return strings.Join(lines, "\n")
}

// Package solver turns the board's current state into a constraint
// satisfaction problem, prunes it with domain-specific feasibility analysis,
// and translates search results back into shape placements.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"svw.info/quadrillion/internal/csp"
	"svw.info/quadrillion/internal/dots"
	"svw.info/quadrillion/internal/game"
	"svw.info/quadrillion/internal/ports"
)

var (
	// ErrInvalidState reports Solve/Help called while the board is already
	// solved or mid-interaction.
	ErrInvalidState = errors.New("invalid state for solving")
	// ErrNoSolution reports an exhausted search.
	ErrNoSolution = errors.New("the current state of the game has no solution")
)

// CSPAdapter implements csp.Problem for the tiling puzzle. Variables are the
// unplaced shapes; a variable's candidates are the dot sets it could legally
// cover. The adapter is not reentrant: one Solve or Help call at a time per
// board, enforced by the board's pick lock.
type CSPAdapter struct {
	board  ports.Board
	params PruneParams
	logger *slog.Logger
	engine *csp.Solver[*dots.Shape, dots.Set]

	// cached solution: every shape's dot set as of the last full solve,
	// replaced wholesale on recomputation
	cache map[*dots.Shape]dots.Set

	// state of the active search call
	vars      []*dots.Shape
	emptyDots dots.Set
	domains   map[*dots.Shape][]dots.Set
	committed dots.Set
	feas      feasibility
}

// NewCSPAdapter builds an adapter for board. A nil logger discards output.
func NewCSPAdapter(board ports.Board, params PruneParams, logger *slog.Logger) *CSPAdapter {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	return &CSPAdapter{
		board:  board,
		params: params,
		logger: logger,
		engine: csp.NewSolver[*dots.Shape, dots.Set](),
		feas:   feasibility{params: params},
	}
}

// Solve computes a covering for every unplaced shape and commits all of
// them, then releases the board lock.
func (a *CSPAdapter) Solve(ctx context.Context) (ports.Stats, error) {
	solution, st, err := a.solution(ctx)
	if err != nil {
		return st, err
	}
	for _, v := range a.vars {
		if err := v.SetDots(solution[v]); err != nil {
			return st, err
		}
	}
	return st, a.board.Release()
}

// Help computes the same covering but commits only one shape from it,
// leaving the rest unplaced.
func (a *CSPAdapter) Help(ctx context.Context) (ports.Stats, error) {
	solution, st, err := a.solution(ctx)
	if err != nil {
		return st, err
	}
	for v, d := range solution {
		if err := v.SetDots(d); err != nil {
			return st, err
		}
		break
	}
	return st, a.board.Release()
}

// solution returns a covering for the current unplaced shapes, searching
// afresh or reusing the cache, with the variables picked on the board. On
// error nothing stays picked.
func (a *CSPAdapter) solution(ctx context.Context) (map[*dots.Shape]dots.Set, ports.Stats, error) {
	if a.board.IsWon() {
		return nil, ports.Stats{}, fmt.Errorf("the game is already solved: %w", ErrInvalidState)
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	a.vars = a.board.ReleasedUnplacedShapes()
	a.emptyDots = a.board.ReleasedEmptyGridDots()
	if err := a.board.PickShapes(a.vars); err != nil {
		if errors.Is(err, game.ErrState) {
			return nil, ports.Stats{}, fmt.Errorf("cannot solve while items are picked: %w", ErrInvalidState)
		}
		return nil, ports.Stats{}, err
	}
	if a.cacheCoversVars() {
		return a.cachedSolution(), ports.Stats{}, nil
	}
	a.domains = a.extractDomains()
	solution, st, ok := a.engine.Solve(a)
	a.logger.Debug("search finished", "ok", ok, "nodes", st.Nodes, "dur", st.Duration)
	if !ok {
		if uerr := a.board.Unpick(); uerr != nil {
			return nil, st, uerr
		}
		return nil, st, ErrNoSolution
	}
	a.cacheSolution(solution)
	return solution, st, nil
}

// --- csp.Problem ---

func (a *CSPAdapter) Variables() []*dots.Shape { return a.vars }

func (a *CSPAdapter) Domains() map[*dots.Shape][]dots.Set { return a.domains }

// RegisterAssignments recomputes the committed dots, validates the remaining
// empty region, and forces any small component that exactly matches an
// unassigned variable's candidate.
func (a *CSPAdapter) RegisterAssignments(assignments map[*dots.Shape]dots.Set, domains map[*dots.Shape][]dots.Set) bool {
	a.committed = dots.NewSet()
	for _, d := range assignments {
		a.committed = a.committed.Union(d)
	}
	if !a.feas.validEmptyDots(a.emptyDots.Minus(a.committed)) {
		return false
	}
	return a.forceSmallComponents(assignments, domains)
}

// IsConsistent reports whether d is disjoint from every dot committed so far
// in this branch.
func (a *CSPAdapter) IsConsistent(_ *dots.Shape, d dots.Set) bool {
	return a.committed.Disjoint(d)
}

// forceSmallComponents requires every small empty component to equal some
// unassigned variable's candidate; matches become inferred assignments. An
// unmatched component, or two components competing for one variable, proves
// the branch unsatisfiable.
func (a *CSPAdapter) forceSmallComponents(assignments map[*dots.Shape]dots.Set, domains map[*dots.Shape][]dots.Set) bool {
	if len(a.feas.small) == 0 {
		return true
	}
	found := make(map[*dots.Shape]dots.Set, len(a.feas.small))
	for _, component := range a.feas.small {
		matched := false
		for v, candidates := range domains {
			if _, taken := assignments[v]; taken {
				continue
			}
			if _, taken := found[v]; taken {
				continue
			}
			if containsSet(candidates, component) {
				found[v] = component
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for v, component := range found {
		assignments[v] = component
		a.committed = a.committed.Union(component)
	}
	return true
}

// --- domain construction ---

// extractDomains builds each variable's candidates: for every location in
// the minimal rectangle bounding the empty dots, every unique configuration
// whose dots lie inside the empty region and leave a still-feasible
// remainder. An infeasible region yields all-empty domains so the search
// aborts trivially.
func (a *CSPAdapter) extractDomains() map[*dots.Shape][]dots.Set {
	domains := make(map[*dots.Shape][]dots.Set, len(a.vars))
	if !a.feas.validEmptyDots(a.emptyDots) {
		return domains
	}
	locations := dots.BoundingBox(a.emptyDots)
	for _, v := range a.vars {
		var candidates []dots.Set
		for loc := range locations {
			for _, cfg := range v.UniqueConfigsAt(loc) {
				d := v.Configured(cfg)
				if d.SubsetOf(a.emptyDots) && a.feas.validEmptyDots(a.emptyDots.Minus(d)) {
					candidates = append(candidates, d)
				}
			}
		}
		domains[v] = candidates
	}
	return domains
}

// --- solution cache ---

// cacheCoversVars reports whether the cached solution still fits: every
// currently-unplaced shape's cached dots must lie inside the current empty
// dots.
func (a *CSPAdapter) cacheCoversVars() bool {
	if len(a.cache) == 0 {
		return false
	}
	for _, v := range a.vars {
		d, ok := a.cache[v]
		if !ok || !d.SubsetOf(a.emptyDots) {
			return false
		}
	}
	return true
}

// cacheSolution snapshots every shape's dots, placed ones as they stand and
// solved ones at their assigned covering.
func (a *CSPAdapter) cacheSolution(solution map[*dots.Shape]dots.Set) {
	a.cache = make(map[*dots.Shape]dots.Set, len(a.board.AllShapes()))
	for _, s := range a.board.AllShapes() {
		a.cache[s] = s.Dots().Clone()
	}
	for v, d := range solution {
		a.cache[v] = d
	}
}

func (a *CSPAdapter) cachedSolution() map[*dots.Shape]dots.Set {
	solution := make(map[*dots.Shape]dots.Set, len(a.vars))
	for _, v := range a.vars {
		solution[v] = a.cache[v]
	}
	return solution
}

func containsSet(candidates []dots.Set, target dots.Set) bool {
	for _, c := range candidates {
		if c.Equal(target) {
			return true
		}
	}
	return false
}

// discardHandler drops every record; used when no logger is supplied.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Package csp provides a generic backtracking search over constraint
// satisfaction problems, in the classic form: minimum-remaining-values
// variable ordering with forward checking after every tentative assignment.
// The engine knows nothing about the problem domain.
package csp

import (
	"time"

	"svw.info/quadrillion/internal/ports"
)

// Problem is the contract a search engine consumes: a variable universe,
// initial per-variable candidate sets, an inference hook, and a per-value
// consistency check.
type Problem[V comparable, D any] interface {
	// Variables returns the search's variable universe.
	Variables() []V

	// Domains returns the initial candidate values per variable.
	Domains() map[V][]D

	// RegisterAssignments registers the currently committed assignments and
	// performs any deducible inference over the unassigned variables in
	// domains. Inferred assignments may be added to the assignments map. A
	// false return announces provable unsatisfiability under the input
	// assignments.
	RegisterAssignments(assignments map[V]D, domains map[V][]D) bool

	// IsConsistent reports whether assigning value to v conflicts with the
	// assignments registered by the last RegisterAssignments call. v must
	// not be one of the registered variables.
	IsConsistent(v V, value D) bool
}

// Solver is a depth-first backtracking search. The zero value is ready to
// use; a Solver carries no state between calls.
type Solver[V comparable, D any] struct{}

func NewSolver[V comparable, D any]() *Solver[V, D] { return &Solver[V, D]{} }

// Solve returns the first complete assignment found, or ok == false when the
// problem has none. Absence of a solution is a normal return, never an
// error. Candidate and variable iteration order affect performance only; the
// outcome is order-independent.
func (s *Solver[V, D]) Solve(p Problem[V, D]) (map[V]D, ports.Stats, bool) {
	start := time.Now()
	run := &search[V, D]{problem: p, total: len(p.Variables())}
	domains := p.Domains()
	for _, v := range p.Variables() {
		if len(domains[v]) == 0 {
			return nil, ports.Stats{Duration: time.Since(start)}, false
		}
	}
	assignments := make(map[V]D, run.total)
	ok := run.backtrack(assignments, domains)
	st := ports.Stats{Nodes: run.nodes, Duration: time.Since(start)}
	if !ok {
		return nil, st, false
	}
	return assignments, st, true
}

type search[V comparable, D any] struct {
	problem Problem[V, D]
	total   int
	nodes   int
}

// backtrack extends assignments in place. On failure it removes exactly the
// keys this call level added, including any the problem inferred, so the
// caller sees its own state untouched.
func (s *search[V, D]) backtrack(assignments map[V]D, domains map[V][]D) bool {
	if len(assignments) == s.total {
		return true
	}
	if len(domains) == 0 {
		return false
	}
	v := selectUnassigned(assignments, domains)
	before := make(map[V]bool, len(assignments))
	for key := range assignments {
		before[key] = true
	}
	for _, value := range domains[v] {
		s.nodes++
		assignments[v] = value
		if next, ok := s.forwardCheck(assignments, domains); ok {
			if s.backtrack(assignments, next) {
				return true
			}
		}
		for key := range assignments {
			if !before[key] {
				delete(assignments, key)
			}
		}
	}
	return false
}

// forwardCheck runs the problem's inference, then filters every remaining
// unassigned variable's domain down to values consistent with the registered
// assignments. It fails when inference reports unsatisfiability or when any
// remaining domain empties.
func (s *search[V, D]) forwardCheck(assignments map[V]D, domains map[V][]D) (map[V][]D, bool) {
	if !s.problem.RegisterAssignments(assignments, domains) {
		return nil, false
	}
	next := make(map[V][]D, len(domains))
	for v, candidates := range domains {
		if _, assigned := assignments[v]; assigned {
			continue
		}
		kept := candidates[:0:0]
		for _, value := range candidates {
			if s.problem.IsConsistent(v, value) {
				kept = append(kept, value)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		next[v] = kept
	}
	return next, true
}

// selectUnassigned picks the unassigned variable with the fewest remaining
// candidates. Ties break on map iteration order, which is deliberate: the
// algorithm must not depend on any particular order.
func selectUnassigned[V comparable, D any](assignments map[V]D, domains map[V][]D) V {
	var best V
	bestLen := -1
	for v, candidates := range domains {
		if _, assigned := assignments[v]; assigned {
			continue
		}
		if bestLen < 0 || len(candidates) < bestLen {
			best, bestLen = v, len(candidates)
		}
	}
	return best
}

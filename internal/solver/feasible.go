package solver

import "svw.info/quadrillion/internal/dots"

// PruneParams calibrates the combinatorial pruning to the shape inventory:
// most shapes cover Unit dots, a single one covers Tetra and a single one
// covers Tri. Connected empty regions of at most SmallComponentMax dots are
// small enough to demand an exact shape match. The values are tied to the
// inventory's size distribution; change both together.
type PruneParams struct {
	Unit              int
	Tetra             int
	Tri               int
	SmallComponentMax int
}

// DefaultPruneParams matches the standard inventory of ten 5-dot shapes,
// one 4-dot shape and one 3-dot shape.
func DefaultPruneParams() PruneParams {
	return PruneParams{Unit: 5, Tetra: 4, Tri: 3, SmallComponentMax: 5}
}

// validComponent decides, by dot counts alone, whether a connected empty
// component of size comp can be covered given total empty dots in all. Each
// case fixes which of the odd-sized shapes the region as a whole must
// absorb, and what partial sizes a single component may then hold.
func (p PruneParams) validComponent(all, comp int) bool {
	u, t4, t3 := p.Unit, p.Tetra, p.Tri
	switch {
	// unit shapes only
	case floorMod(all, u) == 0 && comp%u == 0:
		return true
	// unit shapes plus the Tetra shape
	case floorMod(all-t4, u) == 0 && comp%u%t4 == 0:
		return true
	// unit shapes plus the Tri shape
	case floorMod(all-t3, u) == 0 && comp%u%t3 == 0:
		return true
	// unit shapes plus both odd shapes
	case floorMod(all-t4-t3, u) == 0 &&
		(comp%u%t4%t3 == 0 || (comp-t4-t3 >= 0 && (comp-t4-t3)%u == 0)):
		return true
	}
	return false
}

// floorMod keeps totals smaller than the subtracted offsets on the admitted
// side, matching the residue arithmetic the rule was calibrated with.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// feasibility validates a remaining empty region and collects its small
// connected components for the exact-match inference step.
type feasibility struct {
	params PruneParams
	small  []dots.Set
}

// validEmptyDots checks every 4-connected component of empty against the
// divisibility rule and caches the components at or below the small-size
// threshold.
func (f *feasibility) validEmptyDots(empty dots.Set) bool {
	f.small = f.small[:0]
	all := empty.Len()
	for _, component := range dots.ConnectedSets(empty) {
		if !f.params.validComponent(all, component.Len()) {
			return false
		}
		if component.Len() <= f.params.SmallComponentMax {
			f.small = append(f.small, component)
		}
	}
	return true
}

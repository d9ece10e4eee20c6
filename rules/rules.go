package rules

import (
	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
)

// Rules is the immutable, compiled output of RulesBuilder.Build
// (spec.md §3). It owns the dense variant index space 0..V-1 and is safe
// to share across many concurrently-running solver instances (spec.md §5).
type Rules struct {
	// Coords is the coordinate system variants were expanded under.
	Coords grid.Coordinates

	// Variants is the dense, expanded variant list (read-only after Build).
	Variants []model.Variant

	// Weight[v] is the variant's effective selection weight.
	Weight []float64

	// TotalWeight is Σ Weight[v], precomputed for entropy/weighted-choice
	// heuristics (spec.md §3, "max_weight_sum, precomputed weight totals").
	TotalWeight float64

	// allowed[v][axisIdx] is the set of variants permitted at the
	// neighbour in direction directions[axisIdx] when v is placed.
	allowed    [][]*bitset.Set
	directions []grid.Direction
	dirIndex   map[grid.Direction]int

	// Liveness holds the non-fatal warnings from Build's step 5
	// (spec.md §4.3).
	Liveness []LivenessWarning
}

// NumVariants reports V, the dense variant count.
func (r *Rules) NumVariants() int { return len(r.Variants) }

// Directions reports the coordinate system's directions, in the fixed
// order used to index allowed[v][·].
func (r *Rules) Directions() []grid.Direction { return r.directions }

// Allowed returns the set of variants permitted at the neighbour in
// direction d when v is placed (spec.md §3, A[v,d]).
func (r *Rules) Allowed(v int, d grid.Direction) *bitset.Set {
	idx, ok := r.dirIndex[d]
	if !ok {
		return bitset.New(len(r.Variants))
	}
	return r.allowed[v][idx]
}

// verifySymmetry checks u ∈ allowed[v,d] ⇔ v ∈ allowed[u,opposite(d)] for
// every v, u, d (spec.md §4.3 step 4, §8 property 1).
func (r *Rules) verifySymmetry() bool {
	for vIdx, dirs := range r.allowed {
		for axisIdx, set := range dirs {
			d := r.directions[axisIdx]
			oppIdx := r.dirIndex[r.Coords.Opposite(d)]
			ok := true
			set.Each(func(u int) {
				if !r.allowed[u][oppIdx].Test(vIdx) {
					ok = false
				}
			})
			if !ok {
				return false
			}
		}
	}
	return true
}

package wave

import (
	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/rules"
)

// Wave is one generation attempt's mutable state: the per-cell possible
// set, its cached popcount, and the per-(cell, direction, variant) support
// counters (spec.md §3, §4.4). It is owned exclusively by one solver and
// is reset, not recreated, between retry attempts (spec.md §5).
type Wave struct {
	Rules *rules.Rules
	Grid  grid.Grid

	// Possible[n] is the bitset of variants still permitted at cell n.
	Possible []*bitset.Set
	// Remaining[n] is Possible[n].PopCount(), cached for O(1) reads by
	// the selection heuristic (spec.md §4.5).
	Remaining []int

	directions []grid.Direction
	dirIndex   map[grid.Direction]int
	// support[n] is a flat [len(directions)*V]uint32, indexed via
	// supportIndex(directionIdx, variant).
	support [][]uint32
}

// New allocates a Wave over r and g with every cell's possible set full,
// then computes initial support counts (spec.md §4.4 steps 1–2).
func New(r *rules.Rules, g grid.Grid) *Wave {
	dirs := r.Directions()
	dirIndex := make(map[grid.Direction]int, len(dirs))
	for i, d := range dirs {
		dirIndex[d] = i
	}
	w := &Wave{
		Rules:      r,
		Grid:       g,
		directions: dirs,
		dirIndex:   dirIndex,
	}
	w.Reset()
	return w
}

// Reset reinitialises every cell's possible set to full, recomputes support
// counters from scratch, and prunes any variant that is already
// unsupported by the grid's structure alone (spec.md §4.7: "reset wave,
// re-seed RNG for this attempt"). The returned StepResult reports a
// contradiction reached during that initial pruning, before any caller
// constraint is applied.
func (w *Wave) Reset() *StepResult {
	n := w.Grid.CellCount()
	v := w.numVariants()

	w.Possible = make([]*bitset.Set, n)
	w.Remaining = make([]int, n)
	w.support = make([][]uint32, n)
	for cell := 0; cell < n; cell++ {
		w.Possible[cell] = bitset.Full(v)
		w.Remaining[cell] = v
		w.support[cell] = make([]uint32, len(w.directions)*v)
	}
	w.initSupport()
	return w.pruneUnsupported()
}

// pruneUnsupported removes every variant that already has zero support
// against some existing neighbour, before any collapse has taken place,
// and propagates the consequences to a fixpoint. A variant with zero
// support in a direction has no compatible neighbour value there at all —
// the same condition drain() checks after a decrement, checked once here
// against the freshly computed initial counts (spec.md §4.4 step 2, §8
// scenario 3).
func (w *Wave) pruneUnsupported() *StepResult {
	res := &StepResult{Contradiction: -1}
	var queue []Elimination

	for _, cell := range w.Grid.IterCells() {
		for di, d := range w.directions {
			if _, ok := w.Grid.Neighbour(cell, d); !ok {
				continue
			}
			for _, u := range w.Possible[cell].Slice() {
				if w.support[cell][w.supportIndex(di, u)] != 0 {
					continue
				}
				if !w.Possible[cell].Remove(u) {
					continue
				}
				w.Remaining[cell]--
				res.Eliminated = append(res.Eliminated, Elimination{Cell: cell, Variant: u})
				queue = append(queue, Elimination{Cell: cell, Variant: u})
			}
			if w.Remaining[cell] == 0 {
				res.Contradiction = cell
				return res
			}
		}
	}

	w.drain(queue, res)
	return res
}

func (w *Wave) numVariants() int { return len(w.Rules.Variants) }

func (w *Wave) supportIndex(dirIdx, variant int) int { return dirIdx*w.numVariants() + variant }

// initSupport computes support[n,u,d] = popcount(allowed[u,d] ∩
// possible[neighbour(n,d)]) for every cell, direction and variant
// (spec.md §4.4 step 2). Cells with no neighbour in a direction keep that
// entry at zero: it is never read, because nothing can ever enqueue a
// decrement against a neighbour that does not exist (spec.md §4.4: "support
// is considered satisfied unconditionally").
func (w *Wave) initSupport() {
	v := w.numVariants()
	for _, cell := range w.Grid.IterCells() {
		for di, d := range w.directions {
			m, ok := w.Grid.Neighbour(cell, d)
			if !ok {
				continue
			}
			for u := 0; u < v; u++ {
				count := w.Rules.Allowed(u, d).Clone()
				count.And(w.Possible[m])
				w.support[cell][w.supportIndex(di, u)] = uint32(count.PopCount())
			}
		}
	}
}

// SetAndPropagate collapses cell to survivor — eliminating every other
// variant currently possible there — and drains the AC-4 propagation queue
// to a fixpoint (spec.md §4.6 step 2, §4.7 "collapse; propagate").
//
// Returns ErrVariantNotPossible if survivor is not currently a member of
// cell's possible set; this is a caller error (the caller should validate
// initial constraints before reaching here, spec.md §7 NodeSetError).
func (w *Wave) SetAndPropagate(cell, survivor int) (*StepResult, error) {
	if !w.Possible[cell].Test(survivor) {
		return nil, ErrVariantNotPossible
	}

	res := &StepResult{Contradiction: -1}
	var queue []Elimination
	w.Possible[cell].Each(func(v int) {
		if v != survivor {
			queue = append(queue, Elimination{Cell: cell, Variant: v})
		}
	})

	fresh := bitset.New(w.numVariants())
	fresh.Add(survivor)
	w.Possible[cell] = fresh
	w.Remaining[cell] = 1

	res.Eliminated = append(res.Eliminated, queue...)
	res.Decided = append(res.Decided, cell)

	w.drain(queue, res)
	return res, nil
}

// drain processes the propagation queue to a fixpoint (spec.md §4.6
// step 1). For a removed (n, v), and every direction d with an existing
// neighbour m: for each u ∈ allowed[v,d], decrement support[m,u,opposite(d)]
// (the direction from m back towards n); on reaching zero, if u is still
// possible at m, remove it, record the elimination, and enqueue it. A
// contradiction (remaining_variants[m] reaching zero) stops propagation
// immediately, per spec.md §4.6 step 1.
func (w *Wave) drain(initial []Elimination, res *StepResult) {
	queue := append([]Elimination(nil), initial...)
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		n, v := item.Cell, item.Variant

		for _, d := range w.directions {
			m, ok := w.Grid.Neighbour(n, d)
			if !ok {
				continue
			}
			oppIdx := w.dirIndex[w.Rules.Coords.Opposite(d)]

			for _, u := range w.Rules.Allowed(v, d).Slice() {
				idx := w.supportIndex(oppIdx, u)
				if w.support[m][idx] == 0 {
					continue
				}
				w.support[m][idx]--
				if w.support[m][idx] != 0 || !w.Possible[m].Test(u) {
					continue
				}

				w.Possible[m].Remove(u)
				w.Remaining[m]--
				res.Eliminated = append(res.Eliminated, Elimination{Cell: m, Variant: u})
				queue = append(queue, Elimination{Cell: m, Variant: u})

				if w.Remaining[m] == 1 {
					res.Decided = append(res.Decided, m)
				}
				if w.Remaining[m] == 0 {
					res.Contradiction = m
					return
				}
			}
		}
	}
}

// Support returns support[cell,variant,d], for tests and diagnostics
// (spec.md §8 property 3).
func (w *Wave) Support(cell int, variant int, d grid.Direction) uint32 {
	idx, ok := w.dirIndex[d]
	if !ok {
		return 0
	}
	return w.support[cell][w.supportIndex(idx, variant)]
}

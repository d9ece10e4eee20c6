package solver

import "math/rand"

// attemptSeed derives attempt N's RNG seed from the master seed: each
// retry gets an independent, deterministic stream while attempt 0 keeps
// the master seed verbatim (spec.md §4.7: "re-seed RNG for this attempt
// (or keep seed on first attempt)"). Property 6 (retry idempotence) holds
// because this mapping depends only on (base, attempt), never on how many
// attempts ran before it.
func attemptSeed(base int64, attempt int) int64 {
	return base + int64(attempt)
}

// resetForAttempt discards the current wave and RNG state and starts
// attempt fresh (spec.md §4.7: "reset wave, re-seed RNG for this attempt").
// Tie-break noise is not recomputed: it was fixed once at construction
// (spec.md §4.5). The wave's own reset can itself reach a contradiction —
// a variant with no compatible neighbour anywhere in the grid — which is
// reported back as an init failure, same as an unsatisfiable initial
// constraint.
func (g *Generator) resetForAttempt(attempt int) (cell int, failed bool) {
	g.attempt = attempt
	g.hub.EmitReset(attempt)
	res := g.wave.Reset()
	g.rng = rand.New(rand.NewSource(attemptSeed(g.seed, attempt)))
	g.done = false
	if res.Contradiction != -1 {
		return res.Contradiction, true
	}
	return -1, false
}

// applyInitialConstraints forces every pre-filled grid cell (in
// grid.IterCells order) and then every explicit initial node (in the
// order given), feeding each forcing straight into the propagator
// (spec.md §4.4 step 3, §9 "Initial-grid pre-fill"). Returns the cell at
// which a contradiction (or an already-impossible forcing) was found, and
// true, if the constraints are jointly unsatisfiable.
func (g *Generator) applyInitialConstraints() (int, bool) {
	if g.initialGrid != nil {
		for _, cell := range g.Grid.IterCells() {
			v := g.initialGrid[cell]
			if v == -1 {
				continue
			}
			if cell, failed := g.forceInitial(cell, v); failed {
				return cell, true
			}
		}
	}
	for _, n := range g.initialNodes {
		if cell, failed := g.forceInitial(n.Cell, n.Variant); failed {
			return cell, true
		}
	}
	return -1, false
}

// forceInitial applies one initial forcing, treating both a caught
// ErrVariantNotPossible (the forcing contradicts an earlier one) and a
// runtime contradiction reached during its propagation as the same
// init-time failure.
func (g *Generator) forceInitial(cell, variant int) (int, bool) {
	res, err := g.collapseAndEmit(cell, variant)
	if err != nil {
		return cell, true
	}
	if res.Contradiction != -1 {
		return res.Contradiction, true
	}
	return -1, false
}

package solver

import (
	"math/rand"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/observer"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/wave"
)

// Generator runs the collapse/propagate loop over one Wave, either to
// completion (Generate) or one cycle at a time (Step). It is single-
// threaded and cooperative: one Generator owns its Wave exclusively, and
// a *rules.Rules may be shared read-only across many Generators running
// in parallel on different grids (spec.md §5).
type Generator struct {
	Rules *rules.Rules
	Grid  grid.Grid

	wave      *wave.Wave
	hub       *observer.Hub
	heuristic Heuristic

	maxRetryCount int
	initialNodes  []InitialNode
	initialGrid   []int

	seed  int64
	rng   *rand.Rand
	noise []float64

	attempt        int
	done           bool
	initFailureErr error
}

// Seed reports the master seed given to GeneratorBuilder.WithSeed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the master seed and re-derives the per-attempt RNG and
// tie-break noise for the generator's current attempt. Intended for reuse
// of one Generator across independent generate() calls with different
// seeds; it does not itself reset the wave (spec.md §6).
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.initNoise()
	g.rng = rand.New(rand.NewSource(attemptSeed(g.seed, g.attempt)))
}

// MaxRetryCount reports the configured retry budget.
func (g *Generator) MaxRetryCount() int { return g.maxRetryCount }

// SubscribeObserver registers o to receive every future generation event.
func (g *Generator) SubscribeObserver(o observer.Observer) {
	g.hub.Subscribe(o)
}

// initNoise assigns each cell a small deterministic pseudo-random
// tie-break value, drawn once from the master seed at construction and
// held fixed across every retry attempt (spec.md §4.5: "a deterministic
// pseudo-random perturbation added at solver construction per cell").
func (g *Generator) initNoise() {
	n := g.Grid.CellCount()
	g.noise = make([]float64, n)
	noiseRNG := rand.New(rand.NewSource(g.seed))
	for _, cell := range g.Grid.IterCells() {
		g.noise[cell] = noiseRNG.Float64() * 1e-6
	}
}

// SetAndPropagate forces cell to variant and propagates to fixpoint,
// translating the result into observer events. This is the same
// primitive the heuristic-driven loop uses internally, exposed for
// callers that want to force a decision mid-run (spec.md §6).
func (g *Generator) SetAndPropagate(cell, variant int) (*wave.StepResult, error) {
	return g.collapseAndEmit(cell, variant)
}

// collapseAndEmit wraps wave.Wave.SetAndPropagate with event emission.
func (g *Generator) collapseAndEmit(cell, variant int) (*wave.StepResult, error) {
	res, err := g.wave.SetAndPropagate(cell, variant)
	if err != nil {
		return nil, err
	}
	for _, el := range res.Eliminated {
		g.hub.EmitVariantEliminated(el.Cell, el.Variant)
	}
	for _, decidedCell := range res.Decided {
		if g.wave.Remaining[decidedCell] != 1 {
			continue // emptied later in the same propagation: a contradiction, not a decision
		}
		survivor := g.wave.Possible[decidedCell].Slice()[0]
		g.hub.EmitCellDecided(decidedCell, survivor)
	}
	if res.Contradiction != -1 {
		g.hub.EmitContradiction(res.Contradiction)
	}
	return res, nil
}

// selectCell implements spec.md §4.5: among cells with remaining >= 2,
// pick the one minimising the configured heuristic's key, tie-broken by
// per-cell noise. Reports ok = false when every cell is decided.
func (g *Generator) selectCell() (int, bool) {
	best := -1
	var bestKey float64
	for _, cell := range g.Grid.IterCells() {
		if g.wave.Remaining[cell] < 2 {
			continue
		}
		if g.heuristic == Any {
			return cell, true
		}
		var key float64
		switch g.heuristic {
		case MinimumRemainingValues:
			key = float64(g.wave.Remaining[cell])
		case Entropy:
			key = entropyOf(g.Rules.Weight, g.wave.Possible[cell].Slice())
		}
		key += g.noise[cell]
		if best == -1 || key < bestKey {
			best, bestKey = cell, key
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// selectVariant implements weighted-random selection over possible[cell]
// (spec.md §4.5).
func (g *Generator) selectVariant(cell int) int {
	possible := g.wave.Possible[cell].Slice()
	var total float64
	for _, v := range possible {
		total += g.Rules.Weight[v]
	}
	r := g.rng.Float64() * total
	var accum float64
	for _, v := range possible {
		accum += g.Rules.Weight[v]
		if r < accum {
			return v
		}
	}
	return possible[len(possible)-1]
}

// Step performs exactly one collapse-then-propagate-to-fixpoint cycle and
// returns control to the caller (spec.md §4.7, step-by-step mode). It does
// not retry on contradiction: that is Generate's responsibility. Calling
// Step again after GenerationDone is a no-op returning GenerationDone.
func (g *Generator) Step() (StepStatus, int, error) {
	if g.initFailureErr != nil {
		return Advanced, -1, g.initFailureErr
	}
	if g.done {
		return GenerationDone, -1, nil
	}

	cell, ok := g.selectCell()
	if !ok {
		g.done = true
		return GenerationDone, -1, nil
	}

	variant := g.selectVariant(cell)
	res, err := g.collapseAndEmit(cell, variant)
	if err != nil {
		return Advanced, -1, err
	}
	if res.Contradiction != -1 {
		return StepContradiction, res.Contradiction, nil
	}
	return Advanced, cell, nil
}

// assignment reads the single surviving variant at every cell; only
// meaningful once every cell is decided.
func (g *Generator) assignment() []int {
	out := make([]int, g.Grid.CellCount())
	for cell := range out {
		out[cell] = g.wave.Possible[cell].Slice()[0]
	}
	return out
}

// Generate runs spec.md §4.7's attempt loop to completion: reset, apply
// initial constraints, then Step repeatedly until every cell is decided
// or the propagation queue produces a contradiction, retrying up to
// MaxRetryCount times. Returns ErrInitFailure immediately (no retry) if
// the initial constraints are themselves unsatisfiable, or a
// *ContradictionError if every attempt contradicts.
func (g *Generator) Generate() (*Result, error) {
	if g.initFailureErr != nil {
		return nil, g.initFailureErr
	}

	lastContradictionCell := -1

attempts:
	for attempt := g.attempt; attempt <= g.maxRetryCount; attempt++ {
		if attempt != g.attempt || attempt > 0 {
			if cell, failed := g.resetForAttempt(attempt); failed {
				_ = cell
				return nil, ErrInitFailure
			}
			if cell, failed := g.applyInitialConstraints(); failed {
				_ = cell
				return nil, ErrInitFailure
			}
		}

		for {
			status, cell, err := g.Step()
			if err != nil {
				return nil, err
			}
			switch status {
			case GenerationDone:
				g.hub.EmitDone(attempt)
				return &Result{AttemptCount: attempt, Assignment: g.assignment()}, nil
			case StepContradiction:
				lastContradictionCell = cell
				continue attempts
			}
		}
	}

	g.hub.EmitDone(g.maxRetryCount)
	return nil, &ContradictionError{Cell: lastContradictionCell, Attempt: g.maxRetryCount}
}

// GenerateGrid is Generate, returning just the decided variant assignment.
func (g *Generator) GenerateGrid() ([]int, error) {
	res, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return res.Assignment, nil
}

package solver

import (
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/observer"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/wave"
)

// GeneratorBuilder collects a compiled rule table, a grid, retry/seed
// configuration, a selection heuristic, and optional initial constraints,
// then compiles them into a Generator (spec.md §6). With* methods panic on
// programmer-error inputs (nil rules/grid, negative retry counts); Build
// returns ordinary errors for domain-level problems that depend on the
// combination of rules, grid, and constraints (spec.md §7, "builders panic
// only on programmer-error inputs to With* option constructors").
type GeneratorBuilder struct {
	rules         *rules.Rules
	grid          grid.Grid
	seed          int64
	maxRetryCount int
	heuristic     Heuristic
	initialNodes  []InitialNode
	initialGrid   []int
}

// NewGeneratorBuilder returns a builder with the default heuristic
// (Entropy), seed 0, and no retry budget.
func NewGeneratorBuilder() *GeneratorBuilder {
	return &GeneratorBuilder{heuristic: Entropy}
}

// WithRules attaches the compiled rule table. Panics if r is nil.
func (b *GeneratorBuilder) WithRules(r *rules.Rules) *GeneratorBuilder {
	if r == nil {
		panic("solver: WithRules(nil)")
	}
	b.rules = r
	return b
}

// WithGrid attaches the grid to generate over. Panics if g is nil.
func (b *GeneratorBuilder) WithGrid(g grid.Grid) *GeneratorBuilder {
	if g == nil {
		panic("solver: WithGrid(nil)")
	}
	b.grid = g
	return b
}

// WithSeed sets the master RNG seed (spec.md §5, determinism).
func (b *GeneratorBuilder) WithSeed(seed int64) *GeneratorBuilder {
	b.seed = seed
	return b
}

// WithMaxRetryCount sets how many additional attempts (beyond the first)
// are made after a runtime contradiction. Panics if n is negative.
func (b *GeneratorBuilder) WithMaxRetryCount(n int) *GeneratorBuilder {
	if n < 0 {
		panic("solver: WithMaxRetryCount(n<0)")
	}
	b.maxRetryCount = n
	return b
}

// WithNodeHeuristic selects the cell-selection strategy.
func (b *GeneratorBuilder) WithNodeHeuristic(h Heuristic) *GeneratorBuilder {
	if h != MinimumRemainingValues && h != Entropy && h != Any {
		panic("solver: WithNodeHeuristic: unknown heuristic")
	}
	b.heuristic = h
	return b
}

// WithInitialNodes forces the given (cell, variant) pairs before the
// heuristic-driven loop begins. Calling this more than once appends.
func (b *GeneratorBuilder) WithInitialNodes(nodes ...InitialNode) *GeneratorBuilder {
	b.initialNodes = append(b.initialNodes, nodes...)
	return b
}

// WithInitialGrid pre-fills cells from a dense slice, one entry per cell
// in grid.IterCells order; -1 leaves a cell unconstrained. Equivalent to a
// sequence of SetAndPropagate calls in that order (spec.md §9). Panics if
// variantPerCell is nil.
func (b *GeneratorBuilder) WithInitialGrid(variantPerCell []int) *GeneratorBuilder {
	if variantPerCell == nil {
		panic("solver: WithInitialGrid(nil)")
	}
	b.initialGrid = variantPerCell
	return b
}

// Build validates the accumulated configuration and constructs a
// Generator, applying initial constraints for attempt 0 immediately
// (spec.md §4.4 steps 3–4). Returns ErrMissingRules, ErrMissingGrid,
// ErrNodeSetOutOfRange, or ErrNodeSetImpossible. An init failure is not
// returned here: Build still returns the Generator, and its Generate and
// Step calls then report ErrInitFailure.
func (b *GeneratorBuilder) Build() (*Generator, error) {
	if b.rules == nil {
		return nil, ErrMissingRules
	}
	if b.grid == nil {
		return nil, ErrMissingGrid
	}

	cellCount := b.grid.CellCount()
	variantCount := b.rules.NumVariants()

	for _, n := range b.initialNodes {
		if n.Cell < 0 || n.Cell >= cellCount {
			return nil, ErrNodeSetOutOfRange
		}
		if n.Variant < 0 || n.Variant >= variantCount {
			return nil, ErrNodeSetImpossible
		}
	}
	if b.initialGrid != nil {
		if len(b.initialGrid) != cellCount {
			return nil, ErrNodeSetOutOfRange
		}
		for _, v := range b.initialGrid {
			if v != -1 && (v < 0 || v >= variantCount) {
				return nil, ErrNodeSetImpossible
			}
		}
	}

	g := &Generator{
		Rules:         b.rules,
		Grid:          b.grid,
		wave:          wave.New(b.rules, b.grid),
		hub:           observer.NewHub(),
		heuristic:     b.heuristic,
		maxRetryCount: b.maxRetryCount,
		initialNodes:  b.initialNodes,
		initialGrid:   b.initialGrid,
		seed:          b.seed,
	}
	g.initNoise()
	if cell, failed := g.resetForAttempt(0); failed {
		_ = cell
		g.initFailureErr = ErrInitFailure
		return g, nil
	}

	if cell, failed := g.applyInitialConstraints(); failed {
		_ = cell
		g.initFailureErr = ErrInitFailure
	}

	return g, nil
}

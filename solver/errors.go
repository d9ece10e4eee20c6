package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for GeneratorBuilder.Build (spec.md §7).
var (
	// ErrMissingRules indicates Build was called without WithRules.
	ErrMissingRules = errors.New("solver: GeneratorBuilder.Build: rules were never provided (call WithRules)")

	// ErrMissingGrid indicates Build was called without WithGrid.
	ErrMissingGrid = errors.New("solver: GeneratorBuilder.Build: grid was never provided (call WithGrid)")

	// ErrNodeSetOutOfRange indicates an initial constraint names a cell
	// index outside the grid, or (for WithInitialGrid) supplies a slice
	// whose length does not match the grid's cell count.
	ErrNodeSetOutOfRange = errors.New("solver: initial constraint targets a cell outside the grid")

	// ErrNodeSetImpossible indicates an initial constraint names a
	// variant index outside the compiled rule table's variant range.
	ErrNodeSetImpossible = errors.New("solver: initial constraint names a variant the rule table does not define")

	// ErrInitFailure indicates the initial constraints are jointly
	// unsatisfiable: some cell's possible set reached empty while they
	// were being applied, before any heuristic-driven collapse occurred.
	// Deterministic w.r.t. input; never recovered by retry (spec.md §4.4
	// step 4, §7).
	ErrInitFailure = errors.New("solver: initial constraints are unsatisfiable")
)

// ContradictionError reports that every attempt up to the configured retry
// budget ended in a runtime contradiction (spec.md §7, §4.7). Cell is the
// cell at which the final attempt's wave reached an empty possible set.
type ContradictionError struct {
	Cell    int
	Attempt int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("solver: contradiction at cell %d on final attempt %d", e.Cell, e.Attempt)
}

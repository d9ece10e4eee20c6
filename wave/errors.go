package wave

import "errors"

// ErrVariantNotPossible indicates SetAndPropagate was asked to collapse a
// cell to a variant that is not currently a member of that cell's possible
// set — a caller error, never produced by propagation itself.
var ErrVariantNotPossible = errors.New("wave: variant is not in the cell's possible set")

// Elimination records one (cell, variant) removal from a possible set,
// in the order propagation performed it (spec.md §4.6, §4.8 VariantEliminated).
type Elimination struct {
	Cell    int
	Variant int
}

// StepResult reports everything one SetAndPropagate call did: every
// elimination in processing order, every cell that newly reached
// remaining_variants == 1, and the cell at which a contradiction was
// detected, if any (Contradiction == -1 otherwise).
type StepResult struct {
	Eliminated    []Elimination
	Decided       []int
	Contradiction int
}

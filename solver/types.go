package solver

// InitialNode forces a specific variant at a specific cell before the
// heuristic-driven loop begins (spec.md §4.4 step 3). Force semantics: all
// other variants are eliminated at that cell (spec.md §9 open question,
// resolved; "forbid this variant" is not supported).
type InitialNode struct {
	Cell    int
	Variant int
}

// StepStatus is the closed result of one Generator.Step call (spec.md §4.7).
type StepStatus int

const (
	// Advanced means one collapse-and-propagate cycle completed without
	// contradiction, and at least one cell remains undecided.
	Advanced StepStatus = iota
	// GenerationDone means every cell is now decided.
	GenerationDone
	// StepContradiction means the cycle's propagation emptied some
	// cell's possible set.
	StepContradiction
)

// String renders the status for log/diagnostic output.
func (s StepStatus) String() string {
	switch s {
	case Advanced:
		return "Advanced"
	case GenerationDone:
		return "Done"
	case StepContradiction:
		return "ContradictionAtCell"
	default:
		return "StepStatus(?)"
	}
}

// Result is Generator.Generate's successful outcome: a fully decided
// assignment of one variant index per cell, plus the attempt number (0
// for first-try success) it took to reach it (spec.md §8 property 5).
type Result struct {
	AttemptCount int
	Assignment   []int
}

package solver

import "math"

// Heuristic is the closed set of cell-selection strategies the solver
// supports (spec.md §4.5).
type Heuristic int

const (
	// MinimumRemainingValues picks the undecided cell with the fewest
	// remaining possibilities.
	MinimumRemainingValues Heuristic = iota
	// Entropy picks the undecided cell minimising a log-weighted entropy
	// key; the default heuristic.
	Entropy
	// Any picks the first undecided cell in grid iteration order.
	Any
)

// String renders the heuristic name for log/diagnostic output.
func (h Heuristic) String() string {
	switch h {
	case MinimumRemainingValues:
		return "MinimumRemainingValues"
	case Entropy:
		return "Entropy"
	case Any:
		return "Any"
	default:
		return "Heuristic(?)"
	}
}

// entropyOf computes H = log(Σw) − (Σ w·log w) / Σw over the variants in
// possible (spec.md §4.5). Returns 0 for an empty or single-weight set.
func entropyOf(weight []float64, possible []int) float64 {
	var sumW, sumWLogW float64
	for _, v := range possible {
		w := weight[v]
		sumW += w
		sumWLogW += w * math.Log(w)
	}
	if sumW <= 0 {
		return 0
	}
	return math.Log(sumW) - sumWLogW/sumW
}

package visualize

import "github.com/katalvlaran/wfc/observer"

// Recorder implements observer.Observer, replaying a generation attempt's
// event stream into the per-cell remaining-possibility history Render
// needs. It knows nothing about wave or solver internals beyond what
// Event already carries (spec.md §4.8) — remaining counts are reconstructed
// locally by walking Reset/VariantEliminated/CellDecided events, the same
// way a log sink or test assertion would.
type Recorder struct {
	cellCount   int
	numVariants int

	attempt   int
	remaining []int
	step      int

	// steps[i] is a snapshot of remaining taken after the i-th recorded
	// event of the most recent attempt.
	steps [][]int
	// total[i] is the sum of steps[i], kept alongside to avoid resumming
	// on every Render call.
	total []int

	// finalVariant maps a decided cell to the variant it settled on, reset
	// at the start of each attempt (only the last attempt's decisions
	// survive a retry).
	finalVariant map[int]int
}

// NewRecorder constructs a Recorder for a run over cellCount cells drawn
// from a rule set with numVariants variants.
func NewRecorder(cellCount, numVariants int) *Recorder {
	return &Recorder{
		cellCount:    cellCount,
		numVariants:  numVariants,
		finalVariant: make(map[int]int),
	}
}

// Notify implements observer.Observer.
func (rec *Recorder) Notify(e observer.Event) {
	switch e.Kind {
	case observer.Reset:
		rec.attempt = e.Attempt
		rec.step = 0
		rec.steps = nil
		rec.total = nil
		rec.finalVariant = make(map[int]int)
		rec.remaining = make([]int, rec.cellCount)
		for i := range rec.remaining {
			rec.remaining[i] = rec.numVariants
		}
		rec.snapshot()

	case observer.VariantEliminated:
		if rec.remaining != nil {
			rec.remaining[e.Cell]--
		}
		rec.snapshot()

	case observer.CellDecided:
		rec.finalVariant[e.Cell] = e.Variant
		rec.snapshot()

	case observer.Contradiction, observer.Done:
		rec.snapshot()
	}
}

func (rec *Recorder) snapshot() {
	if rec.remaining == nil {
		return
	}
	frame := make([]int, rec.cellCount)
	copy(frame, rec.remaining)
	rec.steps = append(rec.steps, frame)

	sum := 0
	for _, v := range frame {
		sum += v
	}
	rec.total = append(rec.total, sum)
	rec.step++
}

// Attempt reports the attempt number the currently-buffered history
// belongs to (a fresh Reset discards any prior attempt's history).
func (rec *Recorder) Attempt() int { return rec.attempt }

// FinalVariants returns the cell -> variant mapping decided so far in the
// current attempt.
func (rec *Recorder) FinalVariants() map[int]int {
	out := make(map[int]int, len(rec.finalVariant))
	for k, v := range rec.finalVariant {
		out[k] = v
	}
	return out
}

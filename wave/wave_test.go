package wave

import (
	"testing"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/socket"
)

func buildChessboard(t *testing.T, w, h int) (*rules.Rules, *grid.Cartesian2D) {
	t.Helper()
	rb, err := rules.NewCartesian2D(w, h)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	blackS := rb.Sockets.CreateSocket()
	whiteS := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(blackS, whiteS)

	sides := func(s socket.SocketID) map[grid.Direction][]socket.SocketID {
		return map[grid.Direction][]socket.SocketID{
			grid.North: {s}, grid.East: {s}, grid.South: {s}, grid.West: {s},
		}
	}
	if _, err := rb.Models.AddModel(model.Model{Name: "black", Sides: sides(blackS)}); err != nil {
		t.Fatalf("AddModel black: %v", err)
	}
	if _, err := rb.Models.AddModel(model.Model{Name: "white", Sides: sides(whiteS)}); err != nil {
		t.Fatalf("AddModel white: %v", err)
	}

	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r, rb.Models.Coords
}

func TestNewInitialisesFullPossibleSets(t *testing.T) {
	r, g := buildChessboard(t, 2, 2)
	w := New(r, g)
	for cell := 0; cell < g.CellCount(); cell++ {
		if w.Remaining[cell] != r.NumVariants() {
			t.Errorf("cell %d remaining = %d; want %d", cell, w.Remaining[cell], r.NumVariants())
		}
	}
}

func TestSetAndPropagateRejectsImpossibleVariant(t *testing.T) {
	r, g := buildChessboard(t, 2, 2)
	w := New(r, g)
	w.Possible[0].Remove(0)
	if _, err := w.SetAndPropagate(0, 0); err != ErrVariantNotPossible {
		t.Fatalf("err = %v; want ErrVariantNotPossible", err)
	}
}

// TestChessboardPropagatesAlternation forces cell (0,0) to black and checks
// that propagation narrows every 4-neighbour cell down to the opposite
// colour once fully propagated across a small grid.
func TestChessboardPropagatesAlternation(t *testing.T) {
	r, g := buildChessboard(t, 4, 4)
	w := New(r, g)

	res, err := w.SetAndPropagate(g.Index(0, 0), 0) // 0 == black
	if err != nil {
		t.Fatalf("SetAndPropagate: %v", err)
	}
	if res.Contradiction != -1 {
		t.Fatalf("unexpected contradiction at %d", res.Contradiction)
	}

	east := g.Index(1, 0)
	if w.Remaining[east] != 1 || !w.Possible[east].Test(1) {
		t.Fatalf("east neighbour should be forced to white (1), got remaining=%d possible=%v", w.Remaining[east], w.Possible[east].Slice())
	}
	south := g.Index(0, 1)
	if w.Remaining[south] != 1 || !w.Possible[south].Test(1) {
		t.Fatalf("south neighbour should be forced to white (1), got remaining=%d possible=%v", w.Remaining[south], w.Possible[south].Slice())
	}
}

// TestMonotonicityPossibleOnlyShrinks checks property 4: within one
// attempt, possible[n] only loses members over successive propagations.
func TestMonotonicityPossibleOnlyShrinks(t *testing.T) {
	r, g := buildChessboard(t, 3, 3)
	w := New(r, g)

	before := make([]int, g.CellCount())
	for cell := range before {
		before[cell] = w.Remaining[cell]
	}

	if _, err := w.SetAndPropagate(g.Index(1, 1), 0); err != nil {
		t.Fatalf("SetAndPropagate: %v", err)
	}

	for cell := range before {
		if w.Remaining[cell] > before[cell] {
			t.Fatalf("cell %d grew from %d to %d possibilities", cell, before[cell], w.Remaining[cell])
		}
	}
}

// TestResetPrunesStructurallyUnsupportedVariants checks that Reset itself
// (not just SetAndPropagate) reaches a contradiction when two variants
// never connect at all: every variant has zero support from the moment
// support is computed, before any collapse (spec.md §4.4 step 4).
func TestResetPrunesStructurallyUnsupportedVariants(t *testing.T) {
	rb, err := rules.NewCartesian2D(2, 1)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	a := rb.Sockets.CreateSocket()
	b := rb.Sockets.CreateSocket()
	// No AddConnection call at all: a and b never connect.
	sides := func(s socket.SocketID) map[grid.Direction][]socket.SocketID {
		return map[grid.Direction][]socket.SocketID{
			grid.North: {s}, grid.East: {s}, grid.South: {s}, grid.West: {s},
		}
	}
	rb.Models.AddModel(model.Model{Name: "a", Sides: sides(a)})
	rb.Models.AddModel(model.Model{Name: "b", Sides: sides(b)})
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := rb.Models.Coords

	w := New(r, g)
	res := w.Reset()
	if res.Contradiction == -1 {
		t.Fatalf("Reset: want a contradiction, got none (remaining=%v)", w.Remaining)
	}
}

// TestSupportAccountingAfterPropagation checks property 3: support[n,u,d]
// equals popcount(allowed[u,d] ∩ possible[neighbour(n,d)]) after a fixpoint.
func TestSupportAccountingAfterPropagation(t *testing.T) {
	r, g := buildChessboard(t, 3, 3)
	w := New(r, g)

	if _, err := w.SetAndPropagate(g.Index(0, 0), 0); err != nil {
		t.Fatalf("SetAndPropagate: %v", err)
	}

	for cell := 0; cell < g.CellCount(); cell++ {
		for di, d := range w.directions {
			m, ok := g.Neighbour(cell, d)
			if !ok {
				continue
			}
			for u := 0; u < r.NumVariants(); u++ {
				want := r.Allowed(u, d).Clone()
				want.And(w.Possible[m])
				got := w.support[cell][w.supportIndex(di, u)]
				if int(got) != want.PopCount() {
					t.Fatalf("cell=%d u=%d d=%v: support=%d want=%d", cell, u, d, got, want.PopCount())
				}
			}
		}
	}
}

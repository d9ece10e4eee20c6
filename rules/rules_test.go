package rules

import (
	"testing"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/socket"
)

func uniformSides(d []grid.Direction, s socket.SocketID) map[grid.Direction][]socket.SocketID {
	out := make(map[grid.Direction][]socket.SocketID, len(d))
	for _, dir := range d {
		out[dir] = []socket.SocketID{s}
	}
	return out
}

func TestBuildRejectsEmptyModelCollection(t *testing.T) {
	rb, err := NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	if _, err := rb.Build(); err != ErrNoModels {
		t.Fatalf("Build() err = %v; want ErrNoModels", err)
	}
}

func TestBuildRejectsUnknownSocket(t *testing.T) {
	rb, err := NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	foreign := socket.New().CreateSocket()
	rb.Models.AddModel(model.Model{Sides: uniformSides(rb.Models.Coords.Axes(), foreign)})

	if _, err := rb.Build(); err != ErrUnknownSocket {
		t.Fatalf("Build() err = %v; want ErrUnknownSocket", err)
	}
}

// TestGrassConnectsToItself builds a single uniform "grass" model and checks
// it is allowed next to itself in every direction, and that the compiled
// relation is symmetric (spec.md §8 property 1).
func TestGrassConnectsToItself(t *testing.T) {
	rb, err := NewCartesian2D(3, 3)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	grass := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(grass, grass)
	if _, err := rb.Models.AddModel(model.Model{Name: "grass", Sides: uniformSides(rb.Models.Coords.Axes(), grass)}); err != nil {
		t.Fatalf("AddModel: %v", err)
	}

	rules, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rules.NumVariants() != 1 {
		t.Fatalf("NumVariants = %d; want 1", rules.NumVariants())
	}
	for _, d := range rules.Directions() {
		if !rules.Allowed(0, d).Test(0) {
			t.Errorf("grass not self-compatible in direction %v", d)
		}
	}
	if len(rules.Liveness) != 0 {
		t.Errorf("unexpected liveness warnings: %+v", rules.Liveness)
	}
}

// TestIncompatibleModelsExcludeEachOther builds two models whose sockets
// never connect to each other, and checks neither appears in the other's
// allowed set, while each stays self-compatible and so raises no liveness
// warning.
func TestIncompatibleModelsExcludeEachOther(t *testing.T) {
	rb, err := NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	a := rb.Sockets.CreateSocket()
	b := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(a, a)
	rb.Sockets.AddConnection(b, b)
	// a and b are never connected to one another.

	rb.Models.AddModel(model.Model{Name: "a", Sides: uniformSides(rb.Models.Coords.Axes(), a)})
	rb.Models.AddModel(model.Model{Name: "b", Sides: uniformSides(rb.Models.Coords.Axes(), b)})

	rules, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rules.Allowed(0, grid.North).Test(1) {
		t.Fatalf("variant 0 (a) should not allow variant 1 (b) as neighbour")
	}
	if rules.Allowed(1, grid.North).Test(0) {
		t.Fatalf("variant 1 (b) should not allow variant 0 (a) as neighbour")
	}
	// Each is still self-compatible, so liveness warnings should be empty.
	if len(rules.Liveness) != 0 {
		t.Errorf("unexpected liveness warnings: %+v", rules.Liveness)
	}
}

// TestSymmetryHoldsAcrossAllPairs exhaustively checks u ∈ allowed[v,d] ⇔
// v ∈ allowed[u,opposite(d)] for a small multi-model ruleset.
func TestSymmetryHoldsAcrossAllPairs(t *testing.T) {
	rb, err := NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	grass := rb.Sockets.CreateSocket()
	sand := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(grass, grass, sand)
	rb.Sockets.AddConnection(sand, sand)

	rb.Models.AddModel(model.Model{Sides: uniformSides(rb.Models.Coords.Axes(), grass)})
	rb.Models.AddModel(model.Model{Sides: uniformSides(rb.Models.Coords.Axes(), sand)})

	rules, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !rules.verifySymmetry() {
		t.Fatalf("compiled relation is not symmetric")
	}
	for v := 0; v < rules.NumVariants(); v++ {
		for _, d := range rules.Directions() {
			opp := rules.Coords.Opposite(d)
			rules.Allowed(v, d).Each(func(u int) {
				if !rules.Allowed(u, opp).Test(v) {
					t.Errorf("asymmetry: %d in allowed[%d,%v] but %d not in allowed[%d,%v]", u, v, d, v, u, opp)
				}
			})
		}
	}
}

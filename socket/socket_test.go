package socket

import (
	"testing"

	"github.com/katalvlaran/wfc/grid"
)

func TestCreateSocketIsDense(t *testing.T) {
	sc := New()
	a := sc.CreateSocket()
	b := sc.CreateSocket()
	c := sc.CreateSocket()
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("expected dense ids 0,1,2; got %d,%d,%d", a, b, c)
	}
	if sc.Count() != 3 {
		t.Fatalf("Count() = %d; want 3", sc.Count())
	}
}

func TestAddConnectionIsSymmetricAcrossAllRotations(t *testing.T) {
	sc := New()
	a := sc.CreateSocket()
	b := sc.CreateSocket()
	sc.AddConnection(a, b)

	for _, r := range grid.Rotations() {
		if !sc.Connected(a, b, r) {
			t.Errorf("expected a connected to b at %v", r)
		}
		if !sc.Connected(b, a, r) {
			t.Errorf("expected b connected to a at %v", r)
		}
	}
}

func TestReflexiveConnectionAllowed(t *testing.T) {
	sc := New()
	a := sc.CreateSocket()
	sc.AddConnection(a, a)
	if !sc.Connected(a, a, grid.R0) {
		t.Fatalf("reflexive connection should hold")
	}
}

func TestConstrainedRotatedConnectionIsDirectional(t *testing.T) {
	sc := New()
	a := sc.CreateSocket()
	b := sc.CreateSocket()
	sc.AddConstrainedRotatedConnection(a, []grid.Rotation{grid.R90}, b)

	if !sc.Connected(a, b, grid.R90) {
		t.Fatalf("a should connect to b at relative rotation 90°")
	}
	if sc.Connected(a, b, grid.R0) {
		t.Fatalf("a should NOT connect to b at relative rotation 0°")
	}
	// Symmetry: from b's point of view the same physical alignment is the
	// inverse relative rotation, 270°.
	if !sc.Connected(b, a, grid.R270) {
		t.Fatalf("b should connect to a at relative rotation 270° (inverse of 90°)")
	}
	if sc.Connected(b, a, grid.R90) {
		t.Fatalf("b should NOT connect to a at relative rotation 90°")
	}
}

func TestExists(t *testing.T) {
	sc := New()
	a := sc.CreateSocket()
	if !sc.Exists(a) {
		t.Fatalf("expected a to exist")
	}
	if sc.Exists(a + 1) {
		t.Fatalf("expected undefined socket to not exist")
	}
}

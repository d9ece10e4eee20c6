package rulegraph

import (
	"testing"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/socket"
)

func uniformSides(s socket.SocketID) map[grid.Direction][]socket.SocketID {
	return map[grid.Direction][]socket.SocketID{
		grid.North: {s}, grid.East: {s}, grid.South: {s}, grid.West: {s},
	}
}

func buildChessboardRules(t *testing.T) *rules.Rules {
	t.Helper()
	rb, err := rules.NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	black := rb.Sockets.CreateSocket()
	white := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(black, white)
	if _, err := rb.Models.AddModel(model.Model{Name: "black", Sides: uniformSides(black)}); err != nil {
		t.Fatalf("AddModel black: %v", err)
	}
	if _, err := rb.Models.AddModel(model.Model{Name: "white", Sides: uniformSides(white)}); err != nil {
		t.Fatalf("AddModel white: %v", err)
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r
}

func TestBuildConnectsMutuallyCompatibleVariants(t *testing.T) {
	r := buildChessboardRules(t)
	g := Build(r)

	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount = %d; want 2", g.VertexCount())
	}
	if len(g.Edges()) != 1 {
		t.Fatalf("Edges = %v; want exactly one", g.Edges())
	}
	e := g.Edges()[0]
	if e.A != 0 || e.B != 1 {
		t.Fatalf("edge = %+v; want {0,1,...}", e)
	}
	if len(e.Directions) != 4 {
		t.Fatalf("Directions = %v; want all 4 axes folded in", e.Directions)
	}
}

func TestIslandsSeparatesDisconnectedVariants(t *testing.T) {
	rb, err := rules.NewCartesian2D(2, 1)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	a := rb.Sockets.CreateSocket()
	b := rb.Sockets.CreateSocket()
	c := rb.Sockets.CreateSocket()
	d := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(a, b) // {a,b} island
	rb.Sockets.AddConnection(c, d) // {c,d} island, disjoint
	for name, s := range map[string]socket.SocketID{"a": a, "b": b, "c": c, "d": d} {
		if _, err := rb.Models.AddModel(model.Model{Name: name, Sides: uniformSides(s)}); err != nil {
			t.Fatalf("AddModel %s: %v", name, err)
		}
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := Build(r)
	islands := Islands(g)
	if len(islands) != 2 {
		t.Fatalf("Islands = %v; want 2 islands", islands)
	}
	for _, island := range islands {
		if len(island) != 2 {
			t.Fatalf("island %v; want size 2", island)
		}
	}
}

func TestCompatibilityDistanceAlongChain(t *testing.T) {
	rb, err := rules.NewCartesian2D(2, 1)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	sA := rb.Sockets.CreateSocket()
	sB := rb.Sockets.CreateSocket()
	sC := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(sA, sB)
	rb.Sockets.AddConnection(sB, sC)
	for _, m := range []struct {
		name string
		s    socket.SocketID
	}{{"a", sA}, {"b", sB}, {"c", sC}} {
		if _, err := rb.Models.AddModel(model.Model{Name: m.name, Sides: uniformSides(m.s)}); err != nil {
			t.Fatalf("AddModel %s: %v", m.name, err)
		}
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := Build(r)
	dist, path, err := CompatibilityDistance(g, 0, 2)
	if err != nil {
		t.Fatalf("CompatibilityDistance: %v", err)
	}
	if dist != 2 {
		t.Fatalf("dist = %d; want 2", dist)
	}
	if len(path) != 3 || path[0] != 0 || path[2] != 2 {
		t.Fatalf("path = %v; want [0 1 2]", path)
	}
}

func TestCompatibilityDistanceUnreachableAcrossIslands(t *testing.T) {
	rb, err := rules.NewCartesian2D(2, 1)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	a := rb.Sockets.CreateSocket()
	b := rb.Sockets.CreateSocket()
	c := rb.Sockets.CreateSocket()
	d := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(a, b)
	rb.Sockets.AddConnection(c, d)
	for _, m := range []struct {
		name string
		s    socket.SocketID
	}{{"a", a}, {"b", b}, {"c", c}, {"d", d}} {
		if _, err := rb.Models.AddModel(model.Model{Name: m.name, Sides: uniformSides(m.s)}); err != nil {
			t.Fatalf("AddModel %s: %v", m.name, err)
		}
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := Build(r)
	if _, _, err := CompatibilityDistance(g, 0, 2); err != ErrUnreachable {
		t.Fatalf("err = %v; want ErrUnreachable", err)
	}
}

func TestBridgeConnectionsSpansEachIsland(t *testing.T) {
	// Triangle a-b-c (all mutually compatible): any two of the three edges
	// span it, so the MST must contain exactly 2 of the 3 edges.
	rb, err := rules.NewCartesian2D(2, 1)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	sA := rb.Sockets.CreateSocket()
	sB := rb.Sockets.CreateSocket()
	sC := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(sA, sB)
	rb.Sockets.AddConnection(sB, sC)
	rb.Sockets.AddConnection(sA, sC)
	for name, s := range map[string]socket.SocketID{"a": sA, "b": sB, "c": sC} {
		if _, err := rb.Models.AddModel(model.Model{Name: name, Sides: uniformSides(s)}); err != nil {
			t.Fatalf("AddModel %s: %v", name, err)
		}
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := Build(r)
	if len(g.Edges()) != 3 {
		t.Fatalf("Edges = %v; want a full triangle of 3", g.Edges())
	}
	forest := BridgeConnections(g)
	if len(forest) != 2 {
		t.Fatalf("BridgeConnections = %v; want 2 edges spanning 3 vertices", forest)
	}
}

func TestAdjacencyMatrixIsSymmetricWithZeroDiagonal(t *testing.T) {
	r := buildChessboardRules(t)
	g := Build(r)
	m := AdjacencyMatrix(g)

	for i := 0; i < g.VertexCount(); i++ {
		if m.At(i, i) != 0 {
			t.Fatalf("diagonal (%d,%d) = %v; want 0", i, i, m.At(i, i))
		}
		for j := 0; j < g.VertexCount(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
	if m.At(0, 1) != 1 {
		t.Fatalf("At(0,1) = %v; want 1 (black/white are compatible)", m.At(0, 1))
	}
}

func TestIncidenceMatrixHasTwoEntriesPerColumn(t *testing.T) {
	r := buildChessboardRules(t)
	g := Build(r)
	m := IncidenceMatrix(g)

	for col := 0; col < m.Cols; col++ {
		count := 0
		for row := 0; row < m.Rows; row++ {
			if m.At(row, col) == 1 {
				count++
			}
		}
		if count != 2 {
			t.Fatalf("column %d has %d set entries; want 2 (one per endpoint)", col, count)
		}
	}
}

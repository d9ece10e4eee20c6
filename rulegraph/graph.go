package rulegraph

import (
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/rules"
)

// Edge is one undirected compatibility relation between two variants,
// folding in every direction that permits it. A and B are always stored
// with A <= B.
type Edge struct {
	A, B       int
	Directions []grid.Direction
}

// Graph is the variant-compatibility graph derived from a compiled
// rule table: one vertex per variant, one edge per pair of variants that
// are ever allowed to neighbour each other in some direction.
type Graph struct {
	n         int
	adjacency [][]int
	edges     []Edge
	edgeIndex map[[2]int]int
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Build derives the compatibility graph from r: for every ordered pair
// (v, u, d) with u ∈ allowed[v, d], an undirected edge {v, u} is recorded,
// tagged with every direction that permits it (spec.md §4.3's symmetry
// invariant guarantees the pair is seen from both sides, so each edge is
// only ever added once per direction).
func Build(r *rules.Rules) *Graph {
	n := r.NumVariants()
	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
		edgeIndex: make(map[[2]int]int),
	}

	for v := 0; v < n; v++ {
		for _, d := range r.Directions() {
			for _, u := range r.Allowed(v, d).Slice() {
				if u == v {
					continue
				}
				g.addDirection(v, u, d)
			}
		}
	}
	return g
}

func (g *Graph) addDirection(v, u int, d grid.Direction) {
	key := pairKey(v, u)
	if idx, ok := g.edgeIndex[key]; ok {
		for _, existing := range g.edges[idx].Directions {
			if existing == d {
				return
			}
		}
		g.edges[idx].Directions = append(g.edges[idx].Directions, d)
		return
	}

	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{A: key[0], B: key[1], Directions: []grid.Direction{d}})
	g.adjacency[key[0]] = appendUnique(g.adjacency[key[0]], key[1])
	g.adjacency[key[1]] = appendUnique(g.adjacency[key[1]], key[0])
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

// VertexCount reports the number of variants in the graph.
func (g *Graph) VertexCount() int { return g.n }

// Edges returns every compatibility edge, in discovery order.
func (g *Graph) Edges() []Edge { return g.edges }

// Neighbours returns the variants directly compatible with v.
func (g *Graph) Neighbours(v int) []int { return g.adjacency[v] }

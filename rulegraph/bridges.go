package rulegraph

import "sort"

// BridgeConnections returns a minimum spanning forest over the
// compatibility graph — one tree per island — via Kruskal's algorithm with
// union-find (path compression, union by rank), grounded on the teacher's
// prim_kruskal package. Edges carry no intrinsic weight here, so any
// spanning forest is minimum; Kruskal is used regardless because it
// directly answers the diagnostic question a rule author cares about:
// the smallest edge set that preserves every island's connectivity, i.e.
// which compatibility pairs are load-bearing versus redundant.
func BridgeConnections(g *Graph) []Edge {
	parent := make([]int, g.n)
	rank := make([]int, g.n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		switch {
		case rank[ra] < rank[rb]:
			parent[ra] = rb
		case rank[ra] > rank[rb]:
			parent[rb] = ra
		default:
			parent[rb] = ra
			rank[ra]++
		}
		return true
	}

	ordered := make([]Edge, len(g.edges))
	copy(ordered, g.edges)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].A != ordered[j].A {
			return ordered[i].A < ordered[j].A
		}
		return ordered[i].B < ordered[j].B
	})

	var forest []Edge
	for _, e := range ordered {
		if union(e.A, e.B) {
			forest = append(forest, e)
		}
	}
	return forest
}

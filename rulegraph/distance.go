package rulegraph

import (
	"container/heap"
	"errors"
)

// ErrVertexOutOfRange indicates v or u is not a valid variant index in g.
var ErrVertexOutOfRange = errors.New("rulegraph: vertex index out of range")

// ErrUnreachable indicates u is not reachable from v in the compatibility
// graph — they belong to different islands.
var ErrUnreachable = errors.New("rulegraph: variants are not mutually reachable")

// CompatibilityDistance computes the fewest edges separating v and u in
// the compatibility graph — the minimum number of placements needed for
// them to ever become adjacent, transitively — via Dijkstra's algorithm
// over unit-weight edges (grounded on the teacher's dijkstra package: a
// min-heap of frontier distances, lazy decrease-key by pushing duplicates
// and skipping stale pops). Returns the distance and the path of variant
// indices from v to u inclusive.
func CompatibilityDistance(g *Graph, v, u int) (int, []int, error) {
	if v < 0 || v >= g.n || u < 0 || u >= g.n {
		return 0, nil, ErrVertexOutOfRange
	}
	if v == u {
		return 0, []int{v}, nil
	}

	const unvisited = -1
	dist := make([]int, g.n)
	prev := make([]int, g.n)
	for i := range dist {
		dist[i] = -1
		prev[i] = unvisited
	}
	dist[v] = 0

	pq := &distHeap{{vertex: v, dist: 0}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(distItem)
		if top.dist != dist[top.vertex] {
			continue // stale entry
		}
		if top.vertex == u {
			break
		}
		for _, next := range g.adjacency[top.vertex] {
			nd := dist[top.vertex] + 1
			if dist[next] == -1 || nd < dist[next] {
				dist[next] = nd
				prev[next] = top.vertex
				heap.Push(pq, distItem{vertex: next, dist: nd})
			}
		}
	}

	if dist[u] == -1 {
		return 0, nil, ErrUnreachable
	}

	path := []int{u}
	for cur := u; prev[cur] != unvisited; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return dist[u], path, nil
}

type distItem struct {
	vertex, dist int
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

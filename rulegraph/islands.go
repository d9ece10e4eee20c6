package rulegraph

import "sort"

// Islands partitions the graph's vertices into connected components via
// breadth-first search, grounded on the teacher's bfs package (queue of
// frontier vertices, visited set, depth tracking dropped since only
// reachability is needed here). Each returned island is sorted ascending;
// islands are returned in order of their lowest-numbered vertex.
func Islands(g *Graph) [][]int {
	visited := make([]bool, g.n)
	var islands [][]int

	for start := 0; start < g.n; start++ {
		if visited[start] {
			continue
		}
		var island []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			island = append(island, id)
			for _, next := range g.adjacency[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Ints(island)
		islands = append(islands, island)
	}
	return islands
}

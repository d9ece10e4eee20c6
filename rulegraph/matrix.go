package rulegraph

// Dense is a row-major dense matrix over the graph's vertex set, grounded
// on the teacher's matrix package's flat-storage convention for a dense
// adjacency representation. It carries no behaviour beyond indexed access:
// diagnostics code renders it directly (e.g. as a heatmap).
type Dense struct {
	Rows, Cols int
	data       []float64
}

// At returns the value at (row, col).
func (d *Dense) At(row, col int) float64 { return d.data[row*d.Cols+col] }

func (d *Dense) set(row, col int, v float64) { d.data[row*d.Cols+col] = v }

// AdjacencyMatrix renders g as an n×n dense matrix with 1 where two
// variants are compatible and 0 elsewhere. The diagonal is always 0:
// a variant is never considered compatible with itself by construction.
func AdjacencyMatrix(g *Graph) *Dense {
	d := &Dense{Rows: g.n, Cols: g.n, data: make([]float64, g.n*g.n)}
	for _, e := range g.edges {
		d.set(e.A, e.B, 1)
		d.set(e.B, e.A, 1)
	}
	return d
}

// IncidenceMatrix renders g as an n×m dense matrix (n vertices, m edges)
// with a 1 at (v, e) whenever variant v is one of edge e's endpoints.
func IncidenceMatrix(g *Graph) *Dense {
	m := len(g.edges)
	d := &Dense{Rows: g.n, Cols: m, data: make([]float64, g.n*m)}
	for col, e := range g.edges {
		d.set(e.A, col, 1)
		d.set(e.B, col, 1)
	}
	return d
}

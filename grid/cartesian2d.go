package grid

// Cartesian2D is a rectangular grid of Width×Height cells, adapted from
// lvlath/gridgraph's fixed [][]int land-grid model: same bounds-checking
// discipline and row-major cell indexing, generalised to report looping
// independently per axis instead of only supporting a fixed-size non-
// looping board.
type Cartesian2D struct {
	cartCoords
	width, height int
	loopX, loopY  bool
}

// NewCartesian2D constructs a non-looping width×height grid with axes
// {North, East, South, West}. Returns ErrInvalidGridSize if width or height
// is not positive.
func NewCartesian2D(width, height int) (*Cartesian2D, error) {
	return newCartesian2D(width, height, false, false)
}

// NewCartesian2DLooping is as NewCartesian2D but each axis independently
// wraps modulo its extent when loopX/loopY is true (spec.md §4.4 step 2,
// "If an axis loops, neighbour exists and is computed modulo").
func NewCartesian2DLooping(width, height int, loopX, loopY bool) (*Cartesian2D, error) {
	return newCartesian2D(width, height, loopX, loopY)
}

func newCartesian2D(width, height int, loopX, loopY bool) (*Cartesian2D, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidGridSize
	}
	return &Cartesian2D{
		cartCoords: cartCoords{
			axes:         []Direction{North, East, South, West},
			rotationAxis: AxisZ,
		},
		width:  width,
		height: height,
		loopX:  loopX,
		loopY:  loopY,
	}, nil
}

// Width reports the grid's X extent.
func (g *Cartesian2D) Width() int { return g.width }

// Height reports the grid's Y extent.
func (g *Cartesian2D) Height() int { return g.height }

// CellCount reports Width*Height.
func (g *Cartesian2D) CellCount() int { return g.width * g.height }

// Index converts (x, y) to a row-major cell index.
func (g *Cartesian2D) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a cell index back to (x, y).
func (g *Cartesian2D) Coordinate(cell int) (int, int) {
	return cell % g.width, cell / g.width
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Cartesian2D) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Neighbour implements Grid.Neighbour for the four compass directions,
// honouring each axis's independent looping flag.
func (g *Cartesian2D) Neighbour(cell int, d Direction) (int, bool) {
	x, y := g.Coordinate(cell)
	switch d {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	default:
		return 0, false
	}
	if g.loopX {
		x = ((x % g.width) + g.width) % g.width
	}
	if g.loopY {
		y = ((y % g.height) + g.height) % g.height
	}
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.Index(x, y), true
}

// IterCells enumerates cells in row-major order: y=0..Height-1, x=0..Width-1.
func (g *Cartesian2D) IterCells() []int {
	cells := make([]int, g.CellCount())
	for i := range cells {
		cells[i] = i
	}
	return cells
}

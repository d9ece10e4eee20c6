package grid

// Cartesian3D is a rectangular Width×Height×Depth grid with six axes
// {North, East, South, West, Up, Down} and a configured rotation axis
// (spec.md §6, RulesBuilder::new_cartesian_3d(rotation_axis)). Adapted from
// the same bounds/indexing discipline as Cartesian2D, extended to a third
// dimension.
type Cartesian3D struct {
	cartCoords
	width, height, depth int
	loopX, loopY, loopZ  bool
}

// NewCartesian3D constructs a non-looping width×height×depth grid rotating
// about rotationAxis. Returns ErrInvalidGridSize if any extent is not
// positive.
func NewCartesian3D(width, height, depth int, rotationAxis Axis) (*Cartesian3D, error) {
	return newCartesian3D(width, height, depth, rotationAxis, false, false, false)
}

// NewCartesian3DLooping is as NewCartesian3D but each axis independently
// wraps modulo its extent when the matching loop flag is true.
func NewCartesian3DLooping(width, height, depth int, rotationAxis Axis, loopX, loopY, loopZ bool) (*Cartesian3D, error) {
	return newCartesian3D(width, height, depth, rotationAxis, loopX, loopY, loopZ)
}

func newCartesian3D(width, height, depth int, rotationAxis Axis, loopX, loopY, loopZ bool) (*Cartesian3D, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrInvalidGridSize
	}
	return &Cartesian3D{
		cartCoords: cartCoords{
			axes:         []Direction{North, East, South, West, Up, Down},
			rotationAxis: rotationAxis,
		},
		width:  width,
		height: height,
		depth:  depth,
		loopX:  loopX,
		loopY:  loopY,
		loopZ:  loopZ,
	}, nil
}

// CellCount reports Width*Height*Depth.
func (g *Cartesian3D) CellCount() int { return g.width * g.height * g.depth }

// Index converts (x, y, z) to a row-major cell index: z-slices of
// height×width planes, matching Cartesian2D's row-major plane layout.
func (g *Cartesian3D) Index(x, y, z int) int {
	return z*g.width*g.height + y*g.width + x
}

// Coordinate converts a cell index back to (x, y, z).
func (g *Cartesian3D) Coordinate(cell int) (int, int, int) {
	plane := g.width * g.height
	z := cell / plane
	rem := cell % plane
	return rem % g.width, rem / g.width, z
}

// InBounds reports whether (x, y, z) lies within the grid.
func (g *Cartesian3D) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

// Neighbour implements Grid.Neighbour for all six directions, honouring
// each axis's independent looping flag.
func (g *Cartesian3D) Neighbour(cell int, d Direction) (int, bool) {
	x, y, z := g.Coordinate(cell)
	switch d {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	case Up:
		z++
	case Down:
		z--
	default:
		return 0, false
	}
	if g.loopX {
		x = ((x % g.width) + g.width) % g.width
	}
	if g.loopY {
		y = ((y % g.height) + g.height) % g.height
	}
	if g.loopZ {
		z = ((z % g.depth) + g.depth) % g.depth
	}
	if !g.InBounds(x, y, z) {
		return 0, false
	}
	return g.Index(x, y, z), true
}

// IterCells enumerates cells in row-major order: z=0..Depth-1, y=0..Height-1, x=0..Width-1.
func (g *Cartesian3D) IterCells() []int {
	cells := make([]int, g.CellCount())
	for i := range cells {
		cells[i] = i
	}
	return cells
}

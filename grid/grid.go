package grid

// Grid is the capability the solver consumes (spec.md §6). It is
// deliberately minimal: the solver never inspects world geometry beyond
// these four operations.
type Grid interface {
	Coordinates

	// CellCount reports the total number of cells.
	CellCount() int

	// Neighbour maps (cell, direction) to the neighbouring cell index, or
	// reports false if no such neighbour exists (grid edge on a
	// non-looping axis).
	Neighbour(cell int, d Direction) (int, bool)

	// IterCells enumerates every valid cell index, in a stable,
	// deterministic order (row-major for Cartesian2D/3D). Used for initial
	// constraint application order (spec.md §9, "Initial-grid pre-fill")
	// and for selection-heuristic tie-break noise seeding.
	IterCells() []int
}

// cartCoords is the Coordinates implementation shared by Cartesian2D and
// Cartesian3D; it differs only in RotationAxis and, for 2D, never reports
// Up/Down from Axes().
type cartCoords struct {
	axes         []Direction
	rotationAxis Axis
}

func (c cartCoords) Axes() []Direction { return c.axes }

func (c cartCoords) Opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

func (c cartCoords) AxisOf(d Direction) Axis {
	switch d {
	case East, West:
		return AxisX
	case North, South:
		return AxisY
	default:
		return AxisZ
	}
}

func (c cartCoords) RotationAxis() Axis { return c.rotationAxis }

// RotateDirection rotates the four directions perpendicular to the
// rotation axis by r (90° steps, always clockwise looking down the
// rotation axis: North->East->South->West->North); directions parallel to
// the rotation axis are fixed points of the relabelling (spec.md §4.2, §9).
func (c cartCoords) RotateDirection(d Direction, r Rotation) Direction {
	if c.AxisOf(d) == c.rotationAxis {
		return d // axial faces are fixed points; tagged by rotation elsewhere
	}
	var cycle [4]Direction
	switch c.rotationAxis {
	case AxisZ:
		// Rotation in the X-Y plane: the ordinary 2D compass rotation.
		cycle = [4]Direction{North, East, South, West}
	case AxisX:
		// Rotation in the Y-Z plane.
		cycle = [4]Direction{North, Up, South, Down}
	default: // AxisY
		// Rotation in the X-Z plane.
		cycle = [4]Direction{East, Up, West, Down}
	}
	idx := -1
	for i, dd := range cycle {
		if dd == d {
			idx = i
			break
		}
	}
	if idx == -1 {
		return d
	}
	return cycle[(idx+int(r))%4]
}

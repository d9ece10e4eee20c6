package rules

import (
	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/socket"
)

// Build expands rb.Models into variants and compiles the immutable
// per-direction allowed-neighbour relation (spec.md §4.3).
//
// Step 2's directional comparison splits on whether d is axial (its axis
// equals the coordinate system's RotationAxis, so it is a fixed point of
// RotateDirection and two variants of the same model carry different
// authored content there depending on rotation) or planar (RotateDirection
// already folded the rotation into which authored side Expand assigned to
// d, so a plain rotation-0 lookup is correct; see model.Variant.Sides).
func (rb *RulesBuilder[C]) Build() (*Rules, error) {
	coords := rb.Models.Coords
	variants := model.Expand(rb.Models)
	if len(variants) == 0 {
		return nil, ErrNoModels
	}

	for _, v := range variants {
		for _, ids := range v.Sides {
			for _, id := range ids {
				if !rb.Sockets.Exists(id) {
					return nil, ErrUnknownSocket
				}
			}
		}
	}

	directions := coords.Axes()
	dirIndex := make(map[grid.Direction]int, len(directions))
	for i, d := range directions {
		dirIndex[d] = i
	}

	n := len(variants)
	allowed := make([][]*bitset.Set, n)
	for v := range allowed {
		allowed[v] = make([]*bitset.Set, len(directions))
		for i := range allowed[v] {
			allowed[v][i] = bitset.New(n)
		}
	}

	rotationAxis := coords.RotationAxis()
	for vi, v := range variants {
		for ui, u := range variants {
			for di, d := range directions {
				vSide := v.Sides[d]
				uSide := u.Sides[coords.Opposite(d)]
				if len(vSide) != len(uSide) || len(vSide) == 0 {
					continue
				}

				var r grid.Rotation
				if coords.AxisOf(d) == rotationAxis {
					r = u.Rotation.Sub(v.Rotation)
				} else {
					r = grid.R0
				}

				if sidesCompatible(rb.Sockets, vSide, uSide, r) {
					allowed[vi][di].Add(ui)
				}
			}
		}
	}

	r := &Rules{
		Coords:     coords,
		Variants:   variants,
		allowed:    allowed,
		directions: directions,
		dirIndex:   dirIndex,
	}
	r.Weight = make([]float64, n)
	for i, v := range variants {
		r.Weight[i] = v.Weight
		r.TotalWeight += v.Weight
	}

	if !r.verifySymmetry() {
		return nil, ErrInconsistentRules
	}

	r.Liveness = liveness(allowed, directions, n)

	return r, nil
}

// sidesCompatible reports whether every socket in vSide connects, at
// relative rotation r, to the socket at the same position in uSide
// (spec.md §4.3 step 2).
func sidesCompatible(sc *socket.SocketCollection, vSide, uSide []socket.SocketID, r grid.Rotation) bool {
	for i, vs := range vSide {
		if !sc.Connected(vs, uSide[i], r) {
			return false
		}
	}
	return true
}

// liveness finds, for every variant u and every direction d, whether u ever
// appears in allowed[·, d] for some variant — i.e. whether some placement
// could ever have u as its neighbour in direction d (spec.md §4.3 step 5).
func liveness(allowed [][]*bitset.Set, directions []grid.Direction, n int) []LivenessWarning {
	everAllowed := make([]*bitset.Set, len(directions))
	for i := range everAllowed {
		everAllowed[i] = bitset.New(n)
	}
	for _, perDir := range allowed {
		for di, set := range perDir {
			everAllowed[di].Or(set)
		}
	}

	var warnings []LivenessWarning
	for di, d := range directions {
		for u := 0; u < n; u++ {
			if !everAllowed[di].Test(u) {
				warnings = append(warnings, LivenessWarning{Variant: u, Direction: d})
			}
		}
	}
	return warnings
}

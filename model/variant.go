package model

import (
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/socket"
)

// Variant is a concrete (model, rotation) pair, densely indexed 0..V-1 by
// Expand (spec.md §3). Its per-direction sockets are the authored sockets
// after rotating direction labels by the variant's rotation.
type Variant struct {
	// Index is this variant's dense index in the slice Expand returns.
	Index int
	// Model is the authored model index this variant was expanded from.
	Model int
	// Rotation is this variant's rotation relative to its authored model.
	Rotation grid.Rotation
	// Weight is the effective selection weight (model weight, possibly
	// overridden per rotation via Model.VariantWeight).
	Weight float64
	// Sides maps each direction to the socket sequence facing it after
	// rotation. For faces aligned with the coordinate system's rotation
	// axis, the sequence is the authored one for that same direction
	// (axial faces are fixed points of RotateDirection); such faces must
	// be compared by rules.compile under the variants' *relative*
	// rotation rather than by a plain lookup (spec.md §4.2, §9).
	Sides map[grid.Direction][]socket.SocketID
}

// Expand walks every (model, rotation) pair permitted by each model's
// Rotations set and returns one Variant per pair, densely indexed.
//
// For direction d, the side sequence of a (model, rotation r) variant is
// the authored side for direction rotate(d, -r): "which authored side ends
// up facing d?" (spec.md §4.2). rotate(d, -r) is computed as
// coords.RotateDirection(d, inverse(r)), since RotateDirection(o, r) tells
// us where authored direction o ends up after rotating by r; inverting
// that relation for a fixed final direction d recovers the authored o.
func Expand[C grid.Coordinates](mc *ModelCollection[C]) []Variant {
	var out []Variant
	axes := mc.Coords.Axes()
	for mi, m := range mc.Models {
		for _, r := range m.Rotations {
			inv := grid.R0.Sub(r)
			v := Variant{
				Model:    mi,
				Rotation: r,
				Weight:   m.weightFor(r),
				Sides:    make(map[grid.Direction][]socket.SocketID, len(axes)),
			}
			for _, d := range axes {
				authored := mc.Coords.RotateDirection(d, inv)
				v.Sides[d] = m.Sides[authored]
			}
			out = append(out, v)
		}
	}
	for i := range out {
		out[i].Index = i
	}
	return out
}

package model

import (
	"errors"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/socket"
)

// DefaultWeight is the weight a Model carries when none is given
// (spec.md §3: "weight (positive real, default 1)").
const DefaultWeight = 1.0

// Sentinel errors for model authoring.
var (
	// ErrNoRotations indicates a Model was given an empty rotation set.
	ErrNoRotations = errors.New("model: rotation set must not be empty")
	// ErrBadWeight indicates a non-positive weight was supplied.
	ErrBadWeight = errors.New("model: weight must be positive")
	// ErrMissingSide indicates a Model omits one of the coordinate
	// system's directions.
	ErrMissingSide = errors.New("model: model is missing a side for a direction the coordinate system defines")
)

// Model is what an author writes down: one ordered socket sequence per
// direction of the grid's coordinate system, a name, a weight, and the set
// of rotations this model is permitted to appear in (spec.md §3).
type Model struct {
	// Name is optional, for diagnostics and observer/log output only.
	Name string

	// Sides maps each of the coordinate system's directions to an ordered
	// sequence of sockets. Multi-socket sides (e.g. a wide edge split into
	// left/mid/right sockets) are supported by giving more than one id.
	Sides map[grid.Direction][]socket.SocketID

	// Weight is this model's relative selection weight (spec.md §4.5).
	Weight float64

	// Rotations is the set of rotations this model may appear under. A
	// model authored to be rotationally symmetric about the configured
	// axis lists only grid.R0.
	Rotations []grid.Rotation

	// VariantWeight optionally overrides Weight for specific rotations
	// (ambient addition, SPEC_FULL.md §4.2: "the authoring layer can
	// override per-variant weight"). Absent entries fall back to Weight.
	VariantWeight map[grid.Rotation]float64
}

// Validate checks a Model against coords before it is expanded, returning
// ErrNoRotations, ErrBadWeight, or ErrMissingSide. Unknown socket ids are
// NOT validated here (spec.md §4.1: caught later, during rule compilation).
func (m Model) Validate(coords grid.Coordinates) error {
	if len(m.Rotations) == 0 {
		return ErrNoRotations
	}
	if m.Weight <= 0 {
		return ErrBadWeight
	}
	for _, d := range coords.Axes() {
		if _, ok := m.Sides[d]; !ok {
			return ErrMissingSide
		}
	}
	return nil
}

// weightFor resolves the effective weight for rotation r.
func (m Model) weightFor(r grid.Rotation) float64 {
	if m.VariantWeight != nil {
		if w, ok := m.VariantWeight[r]; ok {
			return w
		}
	}
	return m.Weight
}

// ModelCollection holds a coordinate system plus the authored models that
// will be expanded into Variants under it. C is grid.Cartesian2D or
// grid.Cartesian3D (or any other grid.Coordinates implementation a caller
// supplies).
type ModelCollection[C grid.Coordinates] struct {
	Coords C
	Models []Model
}

// NewModelCollection constructs an empty collection over coords.
func NewModelCollection[C grid.Coordinates](coords C) *ModelCollection[C] {
	return &ModelCollection[C]{Coords: coords}
}

// AddModel validates and appends m, returning its dense model index.
func (mc *ModelCollection[C]) AddModel(m Model) (int, error) {
	if m.Weight == 0 {
		m.Weight = DefaultWeight
	}
	if len(m.Rotations) == 0 {
		m.Rotations = []grid.Rotation{grid.R0}
	}
	if err := m.Validate(mc.Coords); err != nil {
		return 0, err
	}
	mc.Models = append(mc.Models, m)
	return len(mc.Models) - 1, nil
}

package rules

import (
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/socket"
)

// RulesBuilder wraps the two authoring-time collections — sockets and
// models — and compiles them into an immutable *Rules (spec.md §6: "a
// RulesBuilder collects sockets and models, then compiles rules").
type RulesBuilder[C grid.Coordinates] struct {
	Sockets *socket.SocketCollection
	Models  *model.ModelCollection[C]
}

// NewRulesBuilder wraps an already-authored socket collection and model
// collection. Most callers should prefer NewCartesian2D/NewCartesian3D,
// which also construct the coordinate system.
func NewRulesBuilder[C grid.Coordinates](sockets *socket.SocketCollection, models *model.ModelCollection[C]) *RulesBuilder[C] {
	return &RulesBuilder[C]{Sockets: sockets, Models: models}
}

// NewCartesian2D constructs a fresh socket collection and a model
// collection over a new non-looping width×height grid, ready for models to
// be added before calling Build (spec.md §6).
func NewCartesian2D(width, height int) (*RulesBuilder[*grid.Cartesian2D], error) {
	g, err := grid.NewCartesian2D(width, height)
	if err != nil {
		return nil, err
	}
	return &RulesBuilder[*grid.Cartesian2D]{
		Sockets: socket.New(),
		Models:  model.NewModelCollection[*grid.Cartesian2D](g),
	}, nil
}

// NewCartesian2DLooping is as NewCartesian2D but the grid loops per axis.
func NewCartesian2DLooping(width, height int, loopX, loopY bool) (*RulesBuilder[*grid.Cartesian2D], error) {
	g, err := grid.NewCartesian2DLooping(width, height, loopX, loopY)
	if err != nil {
		return nil, err
	}
	return &RulesBuilder[*grid.Cartesian2D]{
		Sockets: socket.New(),
		Models:  model.NewModelCollection[*grid.Cartesian2D](g),
	}, nil
}

// NewCartesian3D constructs a fresh socket collection and a model
// collection over a new non-looping width×height×depth grid rotating about
// rotationAxis (spec.md §6, RulesBuilder::new_cartesian_3d(rotation_axis)).
func NewCartesian3D(width, height, depth int, rotationAxis grid.Axis) (*RulesBuilder[*grid.Cartesian3D], error) {
	g, err := grid.NewCartesian3D(width, height, depth, rotationAxis)
	if err != nil {
		return nil, err
	}
	return &RulesBuilder[*grid.Cartesian3D]{
		Sockets: socket.New(),
		Models:  model.NewModelCollection[*grid.Cartesian3D](g),
	}, nil
}

// NewCartesian3DLooping is as NewCartesian3D but the grid loops per axis.
func NewCartesian3DLooping(width, height, depth int, rotationAxis grid.Axis, loopX, loopY, loopZ bool) (*RulesBuilder[*grid.Cartesian3D], error) {
	g, err := grid.NewCartesian3DLooping(width, height, depth, rotationAxis, loopX, loopY, loopZ)
	if err != nil {
		return nil, err
	}
	return &RulesBuilder[*grid.Cartesian3D]{
		Sockets: socket.New(),
		Models:  model.NewModelCollection[*grid.Cartesian3D](g),
	}, nil
}

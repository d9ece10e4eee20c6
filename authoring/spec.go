package authoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/socket"
)

// Spec is the YAML-decoded shape of a declarative rule authoring document.
// Every field maps onto one call an author would otherwise make by hand
// against socket.SocketCollection / model.ModelCollection / rules.RulesBuilder.
type Spec struct {
	Grid        GridSpec       `yaml:"grid"`
	Sockets     []SocketSpec   `yaml:"sockets"`
	Connections []ConnSpec     `yaml:"connections"`
	Models      []ModelSpec    `yaml:"models"`
}

// GridSpec configures the Cartesian2D coordinate system a Spec builds
// against. Only a 2D grid (each axis optionally looping) is exposed
// declaratively — the fuller Go API remains the way to author a
// Cartesian3D rule set.
type GridSpec struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	LoopX  bool `yaml:"loop_x"`
	LoopY  bool `yaml:"loop_y"`
}

// SocketSpec declares one named socket. Name is local to the document and
// resolved to a dense socket.SocketID at Build time.
type SocketSpec struct {
	Name string `yaml:"name"`
}

// ConnSpec declares a symmetric connection from A to every socket in B, at
// every rotation in Rotations (all four, if omitted).
type ConnSpec struct {
	A         string `yaml:"a"`
	B         []string `yaml:"b"`
	Rotations []int    `yaml:"rotations"`
}

// ModelSpec declares one model: its sides (one socket-name list per
// direction name), weight, permitted rotations, and optional per-rotation
// weight overrides.
type ModelSpec struct {
	Name          string                 `yaml:"name"`
	Weight        float64                `yaml:"weight"`
	Rotations     []int                  `yaml:"rotations"`
	Sides         map[string][]string    `yaml:"sides"`
	VariantWeight map[int]float64        `yaml:"variant_weight"`
}

// LoadSpecFile reads and YAML-decodes path into a Spec. It performs no
// semantic validation — that happens in Build, against the actual
// socket/model/rules machinery, so every validation rule lives in one
// place.
func LoadSpecFile(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("authoring: reading %s: %w", path, err)
	}
	var s Spec
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("authoring: parsing %s: %w", path, err)
	}
	return &s, nil
}

var directionNames = map[string]grid.Direction{
	"north": grid.North,
	"east":  grid.East,
	"south": grid.South,
	"west":  grid.West,
}

var rotationValues = map[int]grid.Rotation{
	0:   grid.R0,
	90:  grid.R90,
	180: grid.R180,
	270: grid.R270,
}

// Build compiles s into a socket collection, a model collection over a
// fresh Cartesian2D grid, and the resulting immutable rule set — the
// declarative equivalent of constructing each by hand via
// rules.NewCartesian2D, SocketCollection.CreateSocket/AddConnection, and
// ModelCollection.AddModel.
func (s *Spec) Build() (*socket.SocketCollection, *model.ModelCollection[*grid.Cartesian2D], *rules.Rules, error) {
	var rb *rules.RulesBuilder[*grid.Cartesian2D]
	var err error
	if s.Grid.LoopX || s.Grid.LoopY {
		rb, err = rules.NewCartesian2DLooping(s.Grid.Width, s.Grid.Height, s.Grid.LoopX, s.Grid.LoopY)
	} else {
		rb, err = rules.NewCartesian2D(s.Grid.Width, s.Grid.Height)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("authoring: building grid: %w", err)
	}

	byName := make(map[string]socket.SocketID, len(s.Sockets))
	for _, sp := range s.Sockets {
		byName[sp.Name] = rb.Sockets.CreateSocket()
	}
	resolve := func(name string) (socket.SocketID, error) {
		id, ok := byName[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSocketName, name)
		}
		return id, nil
	}

	for _, c := range s.Connections {
		a, err := resolve(c.A)
		if err != nil {
			return nil, nil, nil, err
		}
		bs := make([]socket.SocketID, len(c.B))
		for i, name := range c.B {
			id, err := resolve(name)
			if err != nil {
				return nil, nil, nil, err
			}
			bs[i] = id
		}
		if len(c.Rotations) == 0 {
			rb.Sockets.AddConnection(a, bs...)
			continue
		}
		rots := make([]grid.Rotation, len(c.Rotations))
		for i, deg := range c.Rotations {
			r, ok := rotationValues[deg]
			if !ok {
				return nil, nil, nil, fmt.Errorf("%w: %d", ErrUnknownRotation, deg)
			}
			rots[i] = r
		}
		rb.Sockets.AddConstrainedRotatedConnection(a, rots, bs...)
	}

	for _, ms := range s.Models {
		m, err := ms.toModel(resolve)
		if err != nil {
			return nil, nil, nil, err
		}
		if _, err := rb.Models.AddModel(m); err != nil {
			return nil, nil, nil, fmt.Errorf("authoring: model %q: %w", ms.Name, err)
		}
	}

	r, err := rb.Build()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("authoring: compiling rules: %w", err)
	}
	return rb.Sockets, rb.Models, r, nil
}

func (ms ModelSpec) toModel(resolve func(string) (socket.SocketID, error)) (model.Model, error) {
	sides := make(map[grid.Direction][]socket.SocketID, len(ms.Sides))
	for name, names := range ms.Sides {
		d, ok := directionNames[name]
		if !ok {
			return model.Model{}, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
		}
		ids := make([]socket.SocketID, len(names))
		for i, n := range names {
			id, err := resolve(n)
			if err != nil {
				return model.Model{}, err
			}
			ids[i] = id
		}
		sides[d] = ids
	}

	rotations := make([]grid.Rotation, len(ms.Rotations))
	for i, deg := range ms.Rotations {
		r, ok := rotationValues[deg]
		if !ok {
			return model.Model{}, fmt.Errorf("%w: %d", ErrUnknownRotation, deg)
		}
		rotations[i] = r
	}

	var variantWeight map[grid.Rotation]float64
	if len(ms.VariantWeight) > 0 {
		variantWeight = make(map[grid.Rotation]float64, len(ms.VariantWeight))
		for deg, w := range ms.VariantWeight {
			r, ok := rotationValues[deg]
			if !ok {
				return model.Model{}, fmt.Errorf("%w: %d", ErrUnknownRotation, deg)
			}
			variantWeight[r] = w
		}
	}

	return model.Model{
		Name:          ms.Name,
		Sides:         sides,
		Weight:        ms.Weight,
		Rotations:     rotations,
		VariantWeight: variantWeight,
	}, nil
}

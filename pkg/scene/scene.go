package scene

import (
	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/lights"
)

// Scene is an additive container of lights and objects.
// Builders only ever append to it.
type Scene struct {
	Lights  []*lights.Light
	Objects []*Object
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		Lights:  make([]*lights.Light, 0),
		Objects: make([]*Object, 0),
	}
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...*lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// AddObject appends objects to the scene
func (s *Scene) AddObject(o ...*Object) {
	s.Objects = append(s.Objects, o...)
}

// AddLightRig builds a built-in light preset and appends its lights
func (s *Scene) AddLightRig(preset lights.Preset, jitter float64, rng core.Rand) ([]*lights.Light, error) {
	rig, err := lights.BuildLightRig(preset, jitter, rng)
	if err != nil {
		return nil, err
	}
	s.AddLight(rig...)
	return rig, nil
}

// Foreground returns the objects that are not part of the background
func (s *Scene) Foreground() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if !o.Background {
			out = append(out, o)
		}
	}
	return out
}

// Background returns the first background object, or nil
func (s *Scene) Background() *Object {
	for _, o := range s.Objects {
		if o.Background {
			return o
		}
	}
	return nil
}

// Metadata returns the ground-truth records of every labelled object, in scene order
func (s *Scene) Metadata() []Metadata {
	var out []Metadata
	for _, o := range s.Objects {
		if md, ok := o.Metadata(); ok {
			out = append(out, md)
		}
	}
	return out
}

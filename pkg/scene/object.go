package scene

import (
	"fmt"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/material"
)

// Default physical properties of a freshly instantiated object
const (
	DefaultFriction    = 0.5
	DefaultRestitution = 0.5
	DefaultMass        = 1.0
)

// Object is an instantiated scene entity
type Object struct {
	Name    string
	AssetID string
	Scale   float64 // uniform

	Static        bool // excluded from simulation
	Background    bool
	ShadowCatcher bool

	Material *material.Principled

	friction    float64
	restitution float64
	mass        float64

	metadata *Metadata
}

// NewObject creates an object with default physical properties
func NewObject(name, assetID string, scale float64) *Object {
	return &Object{
		Name:        name,
		AssetID:     assetID,
		Scale:       scale,
		friction:    DefaultFriction,
		restitution: DefaultRestitution,
		mass:        DefaultMass,
	}
}

// Friction returns the lateral friction coefficient
func (o *Object) Friction() float64 { return o.friction }

// Restitution returns the bounciness in [0, 1]
func (o *Object) Restitution() float64 { return o.restitution }

// Mass returns the configured mass
func (o *Object) Mass() float64 { return o.mass }

// SimulationMass returns the mass a physics engine should use; static objects have none
func (o *Object) SimulationMass() float64 {
	if o.Static {
		return 0
	}
	return o.mass
}

// SetFriction sets the friction coefficient, which cannot be negative
func (o *Object) SetFriction(friction float64) error {
	if friction < 0 {
		return fmt.Errorf("%w: friction cannot be negative (%v)", core.ErrInvalidProperty, friction)
	}
	o.friction = friction
	return nil
}

// SetRestitution sets the restitution, which must lie in [0, 1]
func (o *Object) SetRestitution(restitution float64) error {
	if restitution < 0 {
		return fmt.Errorf("%w: restitution cannot be negative (%v)", core.ErrInvalidProperty, restitution)
	}
	if restitution > 1 {
		return fmt.Errorf("%w: restitution should be below 1.0 (%v)", core.ErrInvalidProperty, restitution)
	}
	o.restitution = restitution
	return nil
}

// SetMass sets the mass, which cannot be negative
func (o *Object) SetMass(mass float64) error {
	if mass < 0 {
		return fmt.Errorf("%w: mass cannot be negative (%v)", core.ErrInvalidProperty, mass)
	}
	o.mass = mass
	return nil
}

// Metadata returns a copy of the ground-truth record, if one is attached
func (o *Object) Metadata() (Metadata, bool) {
	if o.metadata == nil {
		return Metadata{}, false
	}
	return *o.metadata, true
}

// Metadata is the ground-truth label of a sampled object
type Metadata struct {
	Shape      string     `json:"shape" yaml:"shape"`
	Size       float64    `json:"size" yaml:"size"`
	SizeLabel  string     `json:"size_label" yaml:"size_label"`
	Material   string     `json:"material" yaml:"material"`
	Color      [3]float64 `json:"color" yaml:"color,flow"`
	ColorLabel string     `json:"color_label" yaml:"color_label"`
}

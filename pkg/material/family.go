package material

import (
	"fmt"

	"github.com/df07/go-scene-populator/pkg/core"
)

// Family is the Metal/Rubber branch that fixes shading and physical parameters
type Family string

const (
	Metal  Family = "Metal"
	Rubber Family = "Rubber"
)

// Shading holds the family's fixed surface parameters
type Shading struct {
	Metallic  float64
	Roughness float64
	IOR       float64
	Specular  float64
}

// FamilyParams holds everything a family determines about an object
type FamilyParams struct {
	Shading     Shading
	Friction    float64
	Restitution float64
	Density     float64 // mass per unit of size^3
}

// Families lists the families in draw order
var Families = []Family{Metal, Rubber}

var familyParams = map[Family]FamilyParams{
	Metal: {
		Shading:     Shading{Metallic: 1.0, Roughness: 0.2, IOR: 2.5, Specular: 0.5},
		Friction:    0.4,
		Restitution: 0.3,
		Density:     2.7,
	},
	Rubber: {
		Shading:     Shading{Metallic: 0.0, Roughness: 0.7, IOR: 1.25, Specular: 0.33},
		Friction:    0.8,
		Restitution: 0.7,
		Density:     1.1,
	},
}

// Params returns the fixed parameters of a family
func Params(f Family) (FamilyParams, error) {
	p, ok := familyParams[f]
	if !ok {
		return FamilyParams{}, fmt.Errorf("%w: unknown material family %q", core.ErrInvalidConfiguration, f)
	}
	return p, nil
}

// Material builds the family's principled material with the given base color
func (p FamilyParams) Material(color core.Vec3) *Principled {
	s := p.Shading
	return NewPrincipled(color, s.Metallic, s.Roughness, s.IOR, s.Specular)
}

// Mass approximates volumetric scaling: density * size^3
func (p FamilyParams) Mass(size float64) float64 {
	return p.Density * size * size * size
}

package material

import "github.com/df07/go-scene-populator/pkg/core"

// Principled is a physically-parameterized surface description.
// Every material family fills in all fields so consumers can treat records uniformly.
type Principled struct {
	Color     core.Vec3 `json:"color" yaml:"color"` // base color, RGB in [0, 1]
	Metallic  float64   `json:"metallic" yaml:"metallic"`
	Roughness float64   `json:"roughness" yaml:"roughness"`
	IOR       float64   `json:"ior" yaml:"ior"`
	Specular  float64   `json:"specular" yaml:"specular"`
}

// NewPrincipled creates a principled material, clamping the unit-range parameters
func NewPrincipled(color core.Vec3, metallic, roughness, ior, specular float64) *Principled {
	return &Principled{
		Color:     color,
		Metallic:  clamp01(metallic),
		Roughness: clamp01(roughness),
		IOR:       ior,
		Specular:  clamp01(specular),
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

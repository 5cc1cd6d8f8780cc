package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-populator/pkg/core"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeArea        LightType = "area"
)

// forward is the local axis a light emits along before orientation is applied
var forward = mgl64.Vec3{0, 0, -1}

// Light is a directional or area light owned by the caller's scene.
// Width and Height are only meaningful for area lights.
type Light struct {
	Name           string
	Type           LightType
	Color          core.Vec3 // RGB in [0, 1]
	ShadowSoftness float64
	Intensity      float64
	Position       core.Vec3
	Width          float64
	Height         float64

	// Orientation rotates the local forward axis (-Z) onto Direction
	Orientation mgl64.Quat
	Direction   core.Vec3
}

// LookAt orients the light so that it faces target.
// A light sitting exactly on its target keeps the identity orientation.
func (l *Light) LookAt(target core.Vec3) {
	toTarget := target.Subtract(l.Position)
	if toTarget.Length() == 0 {
		l.Orientation = mgl64.QuatIdent()
		l.Direction = core.FromMgl(forward)
		return
	}

	direction := toTarget.Normalize()
	if direction.Mgl().Dot(forward) < -0.99 {
		// QuatBetweenVectors snaps near-opposite vectors to a half turn; flip to +Z first
		flip := mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})
		l.Orientation = mgl64.QuatBetweenVectors(forward.Mul(-1), direction.Mgl()).Mul(flip)
	} else {
		l.Orientation = mgl64.QuatBetweenVectors(forward, direction.Mgl())
	}
	l.Direction = direction
}

// Facing returns the world-space direction the light emits along, derived from Orientation
func (l *Light) Facing() core.Vec3 {
	return core.FromMgl(l.Orientation.Rotate(forward))
}

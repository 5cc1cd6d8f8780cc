package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 represents a 3D vector. It doubles as an RGB triple for colors.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Array returns the components as an array
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// RGB returns a color as the array form used in metadata records
func (v Vec3) RGB() [3]float64 { return v.Array() }

// Mgl converts to a mathgl vector
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts a mathgl vector back to a Vec3
func FromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// NewVec3FromHex creates a color from a 0xRRGGBB integer with components in [0, 1]
func NewVec3FromHex(hex uint32) Vec3 {
	return Vec3{
		X: float64((hex>>16)&0xff) / 255.0,
		Y: float64((hex>>8)&0xff) / 255.0,
		Z: float64(hex&0xff) / 255.0,
	}
}

// Hex formats a color as #rrggbb, clamping components to [0, 1]
func (v Vec3) Hex() string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.X*255)), uint8(math.Round(c.Y*255)), uint8(math.Round(c.Z*255)))
}

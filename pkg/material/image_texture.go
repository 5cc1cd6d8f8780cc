package material

import (
	"github.com/df07/go-scene-populator/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
	Source string     // Path the image was loaded from, if any
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs wrap; for an equirectangular backdrop u is longitude and v latitude.
func (t *ImageTexture) Evaluate(u, v float64) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	// Wrap UV coordinates to [0, 1]
	u -= float64(int(u))
	v -= float64(int(v))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}

// Average returns the mean color of an n x n grid of samples taken at cell centers
func (t *ImageTexture) Average(n int) core.Vec3 {
	if n <= 0 {
		return core.Vec3{}
	}
	var sum core.Vec3
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			u := (float64(i) + 0.5) / float64(n)
			v := (float64(j) + 0.5) / float64(n)
			sum = sum.Add(t.Evaluate(u, v))
		}
	}
	return sum.Multiply(1 / float64(n*n))
}

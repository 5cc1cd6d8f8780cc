package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-scene-populator/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
	Format string // MIME subtype detected from the file header
	Path   string // Resolved path the image was read from
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image and converts it to a Vec3 color array.
// A leading ~ in filename is expanded to the user's home directory.
// High dynamic range formats (Radiance .hdr, OpenEXR) are not decoded; backdrops must be
// supplied in one of the 8-bit formats above.
func LoadImage(filename string) (*ImageData, error) {
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image path: %w", err)
	}

	kind, err := filetype.MatchFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("failed to load %s: not a supported image (detected %q)", path, kind.MIME.Value)
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	data := fromImage(img)
	data.Format = kind.MIME.Subtype
	data.Path = path
	return data, nil
}

// fromImage converts any decoded image to row-major RGB in [0, 1]. Values are the 8-bit
// encoded samples divided by 255, not linearized.
func fromImage(img image.Image) *ImageData {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := rgba.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)
			pixels[y*width+x] = core.NewVec3(
				float64(rgba.Pix[i])/255.0,
				float64(rgba.Pix[i+1])/255.0,
				float64(rgba.Pix[i+2])/255.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

package sampling

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-scene-populator/pkg/core"
)

// Built-in strategy names
const (
	SizeUniform = "uniform"
	SizeCLEVR   = "clevr"
	SizeConst   = "const"

	ColorCLEVR      = "clevr"
	ColorUniformHue = "uniform_hue"
	ColorGray       = "gray"
)

// Size range for the uniform strategy; labels split at the midpoint
const (
	MinUniformSize = 0.7
	MaxUniformSize = 1.4
)

// CLEVRSizes are the two discrete CLEVR sizes, in draw order
var CLEVRSizes = []NamedSize{
	{Label: "small", Size: 0.7},
	{Label: "large", Size: 1.4},
}

// NamedSize pairs a size label with its scale
type NamedSize struct {
	Label string
	Size  float64
}

// NamedColor pairs a color label with its RGB value
type NamedColor struct {
	Label string
	RGB   core.Vec3
}

// Gray is the CLEVR gray, also used by the gray strategy
var Gray = core.NewVec3FromHex(0x575757)

// CLEVRColors are the eight CLEVR palette colors, in draw order
var CLEVRColors = []NamedColor{
	{"blue", core.NewVec3FromHex(0x2a4bd7)},
	{"brown", core.NewVec3FromHex(0x814a19)},
	{"cyan", core.NewVec3FromHex(0x29d0d0)},
	{"gray", Gray},
	{"green", core.NewVec3FromHex(0x1d6914)},
	{"purple", core.NewVec3FromHex(0x8126c0)},
	{"red", core.NewVec3FromHex(0xad2323)},
	{"yellow", core.NewVec3FromHex(0xffee33)},
}

func uniformSize(rng core.Rand) (float64, string) {
	size := MinUniformSize + rng.Float64()*(MaxUniformSize-MinUniformSize)
	if size < (MinUniformSize+MaxUniformSize)/2 {
		return size, "small"
	}
	return size, "large"
}

func clevrSize(rng core.Rand) (float64, string) {
	s := CLEVRSizes[rng.Intn(len(CLEVRSizes))]
	return s.Size, s.Label
}

func constSize(core.Rand) (float64, string) {
	return 1.0, "medium"
}

func clevrColor(rng core.Rand) (string, core.Vec3) {
	c := CLEVRColors[rng.Intn(len(CLEVRColors))]
	return c.Label, c.RGB
}

// uniformHueColor picks a fully saturated color of uniform hue, labelled by its hex code
func uniformHueColor(rng core.Rand) (string, core.Vec3) {
	rgb := HSVToRGB(rng.Float64(), 1, 1)
	return rgb.Hex(), rgb
}

func grayColor(core.Rand) (string, core.Vec3) {
	return "gray", Gray
}

// HSVToRGB converts hue, saturation and value in [0, 1] to RGB. Hue wraps around.
func HSVToRGB(h, s, v float64) core.Vec3 {
	c := colorful.Hsv((h-math.Floor(h))*360, s, v)
	return core.NewVec3(c.R, c.G, c.B)
}

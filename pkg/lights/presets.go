package lights

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-populator/pkg/core"
)

// Preset names a fixed 4-light rig
type Preset string

const (
	PresetCLEVR   Preset = "clevr"   // dataset-A rig
	PresetKuBasic Preset = "kubasic" // dataset-B rig
)

// RigSize is the number of lights in every preset
const RigSize = 4

// PresetTable maps preset names to light templates. Templates are never handed out directly.
type PresetTable map[Preset][]Light

var (
	white    = core.NewVec3FromHex(0xffffff)
	warm     = core.NewVec3FromHex(0xffedd0)
	cool     = core.NewVec3FromHex(0xc2d0ff)
	softBlue = core.NewVec3FromHex(0xdde4ff)
)

// defaultPresets holds the two built-in rigs. Both use a sun plus back, key and fill area lamps.
var defaultPresets = PresetTable{
	PresetCLEVR: {
		{Name: "sun", Type: LightTypeDirectional, Color: white, ShadowSoftness: 0.2, Intensity: 0.45,
			Position: core.NewVec3(11.6608, -6.62799, 25.8232)},
		{Name: "lamp_back", Type: LightTypeArea, Color: white, Intensity: 50, Width: 1, Height: 1,
			Position: core.NewVec3(-1.1685, 2.64602, 5.81574)},
		{Name: "lamp_key", Type: LightTypeArea, Color: warm, Intensity: 100, Width: 0.5, Height: 0.5,
			Position: core.NewVec3(6.44671, -2.90517, 4.2584)},
		{Name: "lamp_fill", Type: LightTypeArea, Color: cool, Intensity: 30, Width: 0.5, Height: 0.5,
			Position: core.NewVec3(-4.67112, -4.0136, 3.01122)},
	},
	PresetKuBasic: {
		{Name: "sun", Type: LightTypeDirectional, Color: white, ShadowSoftness: 0.35, Intensity: 0.8,
			Position: core.NewVec3(11.6608, -6.62799, 25.8232)},
		{Name: "lamp_back", Type: LightTypeArea, Color: white, Intensity: 70, Width: 2, Height: 2,
			Position: core.NewVec3(-1.1685, 5.64602, 7.81574)},
		{Name: "lamp_key", Type: LightTypeArea, Color: warm, Intensity: 150, Width: 1, Height: 1,
			Position: core.NewVec3(8.44671, -3.90517, 6.2584)},
		{Name: "lamp_fill", Type: LightTypeArea, Color: softBlue, Intensity: 45, Width: 1, Height: 1,
			Position: core.NewVec3(-6.67112, -5.0136, 4.01122)},
	},
}

// DefaultPresets returns a copy of the built-in preset table
func DefaultPresets() PresetTable {
	table := make(PresetTable, len(defaultPresets))
	for name, rig := range defaultPresets {
		table[name] = append([]Light(nil), rig...)
	}
	return table
}

// Names returns the preset names in sorted order
func (t PresetTable) Names() []Preset {
	names := make([]Preset, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// lightSpec is the on-disk form of a light template
type lightSpec struct {
	Name           string     `yaml:"name"`
	Type           LightType  `yaml:"type"`
	Color          [3]float64 `yaml:"color"`
	ShadowSoftness float64    `yaml:"shadow_softness"`
	Intensity      float64    `yaml:"intensity"`
	Position       [3]float64 `yaml:"position"`
	Width          float64    `yaml:"width,omitempty"`
	Height         float64    `yaml:"height,omitempty"`
}

type presetFile struct {
	Presets map[Preset][]lightSpec `yaml:"presets"`
}

// ParsePresets decodes a YAML preset document and merges it over the built-in presets.
// Every preset must have exactly RigSize lights of a known type with non-negative intensity.
func ParsePresets(data []byte) (PresetTable, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse light presets: %w", err)
	}

	table := DefaultPresets()
	for name, specs := range file.Presets {
		if len(specs) != RigSize {
			return nil, fmt.Errorf("%w: preset %q has %d lights, want %d",
				core.ErrInvalidConfiguration, name, len(specs), RigSize)
		}
		rig := make([]Light, 0, RigSize)
		for _, spec := range specs {
			if spec.Type != LightTypeDirectional && spec.Type != LightTypeArea {
				return nil, fmt.Errorf("%w: preset %q light %q has unknown type %q",
					core.ErrInvalidConfiguration, name, spec.Name, spec.Type)
			}
			if spec.Intensity < 0 {
				return nil, fmt.Errorf("%w: preset %q light %q has negative intensity",
					core.ErrInvalidConfiguration, name, spec.Name)
			}
			rig = append(rig, Light{
				Name:           spec.Name,
				Type:           spec.Type,
				Color:          core.NewVec3(spec.Color[0], spec.Color[1], spec.Color[2]),
				ShadowSoftness: spec.ShadowSoftness,
				Intensity:      spec.Intensity,
				Position:       core.NewVec3(spec.Position[0], spec.Position[1], spec.Position[2]),
				Width:          spec.Width,
				Height:         spec.Height,
			})
		}
		table[name] = rig
	}
	return table, nil
}

// LoadPresets reads a YAML preset file, see ParsePresets
func LoadPresets(path string) (PresetTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read light presets: %w", err)
	}
	return ParsePresets(data)
}

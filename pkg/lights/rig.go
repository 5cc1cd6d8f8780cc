package lights

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/df07/go-scene-populator/pkg/core"
)

// Origin is the point every rig light is aimed at
var Origin = core.NewVec3(0, 0, 0)

// BuildLightRig builds the named built-in preset, see PresetTable.Build
func BuildLightRig(preset Preset, jitter float64, rng core.Rand) ([]*Light, error) {
	return defaultPresets.Build(preset, jitter, rng)
}

// Build returns fresh copies of the preset's lights with jittered intensities, each aimed at the origin.
// Each intensity becomes base * (1 + jitter*(u - 0.5)) for one uniform draw u per light,
// so jitter in [0, 1] bounds the change to +/- 50%*jitter.
func (t PresetTable) Build(preset Preset, jitter float64, rng core.Rand) ([]*Light, error) {
	templates, ok := t[preset]
	if !ok {
		return nil, fmt.Errorf("%w: unknown light preset %q", core.ErrInvalidConfiguration, preset)
	}

	rig := make([]*Light, 0, len(templates))
	for i := range templates {
		light := &Light{}
		if err := copier.Copy(light, &templates[i]); err != nil {
			return nil, fmt.Errorf("failed to copy light %q: %w", templates[i].Name, err)
		}

		light.Intensity = templates[i].Intensity * (1 + jitter*(rng.Float64()-0.5))
		light.LookAt(Origin)
		rig = append(rig, light)
	}
	return rig, nil
}

// Package catalog provides a manifest-backed asset source that instantiates named
// shapes and serves the size and color sampling strategies.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/sampling"
	"github.com/df07/go-scene-populator/pkg/scene"
)

//go:embed assets.yaml
var defaultManifest []byte

// AssetSpec describes one instantiable template. Zero physical values fall back to object defaults.
type AssetSpec struct {
	Description string  `yaml:"description"`
	Mass        float64 `yaml:"mass,omitempty"`
	Friction    float64 `yaml:"friction,omitempty"`
	Restitution float64 `yaml:"restitution,omitempty"`
	Static      bool    `yaml:"static,omitempty"`
	Background  bool    `yaml:"background,omitempty"`
}

// Manifest is the on-disk description of a catalog
type Manifest struct {
	Name   string               `yaml:"name"`
	Assets map[string]AssetSpec `yaml:"assets"`
}

// ParseManifest decodes a YAML manifest
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse asset manifest: %w", err)
	}
	if len(m.Assets) == 0 {
		return Manifest{}, fmt.Errorf("%w: asset manifest %q has no assets", core.ErrInvalidConfiguration, m.Name)
	}
	return m, nil
}

// Local is an in-memory catalog built from a manifest
type Local struct {
	name     string
	assets   map[string]AssetSpec
	samplers *sampling.Registry
}

var _ scene.Catalog = (*Local)(nil)

// NewLocal creates a catalog from a manifest; a nil registry means the built-in strategies
func NewLocal(m Manifest, samplers *sampling.Registry) *Local {
	if samplers == nil {
		samplers = sampling.NewDefaultRegistry()
	}
	assets := make(map[string]AssetSpec, len(m.Assets))
	for id, spec := range m.Assets {
		assets[id] = spec
	}
	return &Local{name: m.Name, assets: assets, samplers: samplers}
}

// NewDefault creates the built-in KuBasic catalog with the built-in strategies
func NewDefault() *Local {
	m, err := ParseManifest(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded manifest: %v", err))
	}
	return NewLocal(m, nil)
}

// Load reads a manifest file and creates a catalog from it
func Load(path string, samplers *sampling.Registry) (*Local, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return NewLocal(m, samplers), nil
}

// Name returns the manifest name
func (c *Local) Name() string { return c.name }

// AssetIDs returns the known asset ids, sorted
func (c *Local) AssetIDs() []string {
	ids := make([]string, 0, len(c.assets))
	for id := range c.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Samplers returns the strategy registry backing SampleSize and SampleColor
func (c *Local) Samplers() *sampling.Registry { return c.samplers }

// Create instantiates assetID as an object called name with a uniform scale
func (c *Local) Create(name, assetID string, scale float64) (*scene.Object, error) {
	spec, ok := c.assets[assetID]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in catalog %q", core.ErrUnknownAsset, assetID, c.name)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale of %q must be positive, got %v", core.ErrInvalidConfiguration, assetID, scale)
	}

	obj := scene.NewObject(name, assetID, scale)
	obj.Static = spec.Static
	obj.Background = spec.Background
	if spec.Mass != 0 {
		if err := obj.SetMass(spec.Mass); err != nil {
			return nil, fmt.Errorf("asset %q: %w", assetID, err)
		}
	}
	if spec.Friction != 0 {
		if err := obj.SetFriction(spec.Friction); err != nil {
			return nil, fmt.Errorf("asset %q: %w", assetID, err)
		}
	}
	if spec.Restitution != 0 {
		if err := obj.SetRestitution(spec.Restitution); err != nil {
			return nil, fmt.Errorf("asset %q: %w", assetID, err)
		}
	}
	return obj, nil
}

// SampleSize draws from the named size strategy
func (c *Local) SampleSize(strategy string, rng core.Rand) (float64, string, error) {
	return c.samplers.SampleSize(strategy, rng)
}

// SampleColor draws from the named color strategy
func (c *Local) SampleColor(strategy string, rng core.Rand) (string, core.Vec3, error) {
	return c.samplers.SampleColor(strategy, rng)
}

// Package sampling maps strategy names to the size and color samplers the
// object factory draws from. Strategies are looked up by name at call time.
package sampling

import (
	"fmt"
	"sort"

	"github.com/df07/go-scene-populator/pkg/core"
)

// SizeSampler draws an object size and its categorical label
type SizeSampler interface {
	SampleSize(rng core.Rand) (size float64, label string)
}

// ColorSampler draws an RGB color and its categorical label
type ColorSampler interface {
	SampleColor(rng core.Rand) (label string, rgb core.Vec3)
}

// SizeFunc adapts a function to SizeSampler
type SizeFunc func(rng core.Rand) (float64, string)

func (f SizeFunc) SampleSize(rng core.Rand) (float64, string) { return f(rng) }

// ColorFunc adapts a function to ColorSampler
type ColorFunc func(rng core.Rand) (string, core.Vec3)

func (f ColorFunc) SampleColor(rng core.Rand) (string, core.Vec3) { return f(rng) }

// Registry holds named size and color strategies
type Registry struct {
	sizes  map[string]SizeSampler
	colors map[string]ColorSampler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		sizes:  make(map[string]SizeSampler),
		colors: make(map[string]ColorSampler),
	}
}

// NewDefaultRegistry creates a registry holding the built-in strategies
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterSize(SizeUniform, SizeFunc(uniformSize))
	r.RegisterSize(SizeCLEVR, SizeFunc(clevrSize))
	r.RegisterSize(SizeConst, SizeFunc(constSize))
	r.RegisterColor(ColorCLEVR, ColorFunc(clevrColor))
	r.RegisterColor(ColorUniformHue, ColorFunc(uniformHueColor))
	r.RegisterColor(ColorGray, ColorFunc(grayColor))
	return r
}

// RegisterSize adds or replaces a size strategy
func (r *Registry) RegisterSize(name string, s SizeSampler) {
	r.sizes[name] = s
}

// RegisterColor adds or replaces a color strategy
func (r *Registry) RegisterColor(name string, s ColorSampler) {
	r.colors[name] = s
}

// SampleSize draws from the named size strategy
func (r *Registry) SampleSize(strategy string, rng core.Rand) (float64, string, error) {
	s, ok := r.sizes[strategy]
	if !ok {
		return 0, "", fmt.Errorf("%w: size strategy %q", core.ErrUnknownStrategy, strategy)
	}
	size, label := s.SampleSize(rng)
	return size, label, nil
}

// SampleColor draws from the named color strategy
func (r *Registry) SampleColor(strategy string, rng core.Rand) (string, core.Vec3, error) {
	s, ok := r.colors[strategy]
	if !ok {
		return "", core.Vec3{}, fmt.Errorf("%w: color strategy %q", core.ErrUnknownStrategy, strategy)
	}
	label, rgb := s.SampleColor(rng)
	return label, rgb, nil
}

// SizeStrategies returns the registered size strategy names, sorted
func (r *Registry) SizeStrategies() []string {
	return sortedKeys(r.sizes)
}

// ColorStrategies returns the registered color strategy names, sorted
func (r *Registry) ColorStrategies() []string {
	return sortedKeys(r.colors)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

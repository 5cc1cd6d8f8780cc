package scene

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/material"
)

// Object set names
const (
	ObjectSetCLEVR   = "clevr"
	ObjectSetKuBasic = "kubasic"
)

var (
	kubasicObjects = [...]string{
		"cube", "cylinder", "sphere", "cone", "torus", "gear",
		"torus-knot", "sponge", "spot", "teapot", "suzanne",
	}
	clevrObjects = [...]string{"cube", "cylinder", "sphere"}
)

// KuBasicObjects returns the KuBasic shape vocabulary
func KuBasicObjects() []string { return append([]string(nil), kubasicObjects[:]...) }

// CLEVRObjects returns the CLEVR shape vocabulary
func CLEVRObjects() []string { return append([]string(nil), clevrObjects[:]...) }

// ObjectSet returns the shape vocabulary for an object set name
func ObjectSet(name string) ([]string, error) {
	switch name {
	case ObjectSetCLEVR:
		return CLEVRObjects(), nil
	case ObjectSetKuBasic:
		return KuBasicObjects(), nil
	default:
		return nil, fmt.Errorf("%w: unknown object set %q", core.ErrInvalidConfiguration, name)
	}
}

// Catalog instantiates named assets and provides the sampling services keyed by strategy name
type Catalog interface {
	Create(name, assetID string, scale float64) (*Object, error)
	SampleSize(strategy string, rng core.Rand) (size float64, label string, err error)
	SampleColor(strategy string, rng core.Rand) (label string, rgb core.Vec3, err error)
}

// NewRandomObject samples a shape, size, color and material family, instantiates the shape
// from the catalog and configures its material, physics and metadata accordingly.
//
// Draw order is fixed: shape, size strategy, color strategy, material family.
// Strategy and catalog errors are returned as-is. Sampled labels that cannot appear in a
// display name are rejected with ErrInvalidConfiguration before anything is created.
func NewRandomObject(cat Catalog, objectSet, sizeStrategy, colorStrategy string, rng core.Rand) (*Object, error) {
	shapes, err := ObjectSet(objectSet)
	if err != nil {
		return nil, err
	}
	shape := shapes[rng.Intn(len(shapes))]

	size, sizeLabel, err := cat.SampleSize(sizeStrategy, rng)
	if err != nil {
		return nil, err
	}
	colorLabel, rgb, err := cat.SampleColor(colorStrategy, rng)
	if err != nil {
		return nil, err
	}
	if err := CheckLabel(sizeLabel); err != nil {
		return nil, fmt.Errorf("size strategy %q: %w", sizeStrategy, err)
	}
	if err := CheckLabel(colorLabel); err != nil {
		return nil, fmt.Errorf("color strategy %q: %w", colorStrategy, err)
	}
	family := material.Families[rng.Intn(len(material.Families))]

	params, err := material.Params(family)
	if err != nil {
		return nil, err
	}

	obj, err := cat.Create(ObjectName(sizeLabel, colorLabel, family, shape), shape, size)
	if err != nil {
		return nil, err
	}

	obj.Material = params.Material(rgb)
	if err := obj.SetFriction(params.Friction); err != nil {
		return nil, err
	}
	if err := obj.SetRestitution(params.Restitution); err != nil {
		return nil, err
	}
	if err := obj.SetMass(params.Mass(size)); err != nil {
		return nil, err
	}

	obj.metadata = &Metadata{
		Shape:      shape,
		Size:       size,
		SizeLabel:  sizeLabel,
		Material:   string(family),
		Color:      rgb.RGB(),
		ColorLabel: colorLabel,
	}
	return obj, nil
}

// nameField is written in place of an empty label so names always have four fields.
// It is reserved and cannot be used as a label itself.
const nameField = "-"

// CheckLabel reports whether label can be encoded in a display name.
// Labels must not contain whitespace and must not equal the reserved "-".
func CheckLabel(label string) error {
	if label == nameField {
		return fmt.Errorf("%w: label %q is reserved for empty labels", core.ErrInvalidConfiguration, label)
	}
	if strings.ContainsFunc(label, unicode.IsSpace) {
		return fmt.Errorf("%w: label %q contains whitespace", core.ErrInvalidConfiguration, label)
	}
	return nil
}

// ObjectName composes the display name "<size_label> <color_label> <material> <shape>".
// The result only parses back if every label passes CheckLabel.
func ObjectName(sizeLabel, colorLabel string, family material.Family, shape string) string {
	fields := []string{sizeLabel, colorLabel, string(family), shape}
	for i, f := range fields {
		if f == "" {
			fields[i] = nameField
		}
	}
	return strings.Join(fields, " ")
}

// NameParts are the labels encoded in a display name
type NameParts struct {
	SizeLabel  string
	ColorLabel string
	Material   material.Family
	Shape      string
}

// ParseObjectName splits a display name produced by ObjectName
func ParseObjectName(name string) (NameParts, error) {
	fields := strings.Split(name, " ")
	if len(fields) != 4 {
		return NameParts{}, fmt.Errorf("malformed object name %q: want 4 fields, got %d", name, len(fields))
	}
	for i, f := range fields {
		if f == nameField {
			fields[i] = ""
		}
	}
	return NameParts{
		SizeLabel:  fields[0],
		ColorLabel: fields[1],
		Material:   material.Family(fields[2]),
		Shape:      fields[3],
	}, nil
}

// PopulateOptions selects the object set and sampling strategies for PopulateObjects
type PopulateOptions struct {
	ObjectSet     string
	SizeStrategy  string
	ColorStrategy string
	Logger        core.Logger // optional
}

// PopulateObjects adds n random objects to the scene, stopping at the first error.
// Objects created before the error stay in the scene.
func (s *Scene) PopulateObjects(cat Catalog, n int, opts PopulateOptions, rng core.Rand) ([]*Object, error) {
	created := make([]*Object, 0, n)
	for i := 0; i < n; i++ {
		obj, err := NewRandomObject(cat, opts.ObjectSet, opts.SizeStrategy, opts.ColorStrategy, rng)
		if err != nil {
			return created, fmt.Errorf("failed to create object %d of %d: %w", i+1, n, err)
		}
		s.AddObject(obj)
		created = append(created, obj)
		if opts.Logger != nil {
			opts.Logger.Printf("added %q (mass %.3f)", obj.Name, obj.Mass())
		}
	}
	return created, nil
}

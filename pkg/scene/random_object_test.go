package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/material"
	"github.com/df07/go-scene-populator/pkg/testsupport"
)

// stubCatalog returns fixed samples and records every Create call
type stubCatalog struct {
	size       float64
	sizeLabel  string
	colorLabel string
	rgb        core.Vec3

	sizeErr   error
	colorErr  error
	createErr error

	created []string
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		size:       2.0,
		sizeLabel:  "large",
		colorLabel: "red",
		rgb:        core.NewVec3(1, 0, 0),
	}
}

func (c *stubCatalog) Create(name, assetID string, scale float64) (*Object, error) {
	c.created = append(c.created, assetID)
	if c.createErr != nil {
		return nil, c.createErr
	}
	return NewObject(name, assetID, scale), nil
}

func (c *stubCatalog) SampleSize(strategy string, rng core.Rand) (float64, string, error) {
	if c.sizeErr != nil {
		return 0, "", c.sizeErr
	}
	return c.size, c.sizeLabel, nil
}

func (c *stubCatalog) SampleColor(strategy string, rng core.Rand) (string, core.Vec3, error) {
	if c.colorErr != nil {
		return "", core.Vec3{}, c.colorErr
	}
	return c.colorLabel, c.rgb, nil
}

func TestNewRandomObject_ClevrRubberCube(t *testing.T) {
	cat := newStubCatalog()
	// shape index 0, family index 1
	rng := &testsupport.ScriptedRand{Ints: []int{0, 1}}

	obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", rng)
	require.NoError(t, err)

	rubber, err := material.Params(material.Rubber)
	require.NoError(t, err)

	assert.Equal(t, "cube", obj.AssetID)
	assert.Equal(t, 2.0, obj.Scale)
	assert.InDelta(t, rubber.Density*8, obj.Mass(), 1e-12)
	require.NotNil(t, obj.Material)
	assert.Equal(t, 0.0, obj.Material.Metallic)
	assert.Equal(t, core.NewVec3(1, 0, 0), obj.Material.Color)
	assert.Equal(t, rubber.Friction, obj.Friction())
	assert.Equal(t, rubber.Restitution, obj.Restitution())

	md, ok := obj.Metadata()
	require.True(t, ok)
	assert.Equal(t, Metadata{
		Shape:      "cube",
		Size:       2.0,
		SizeLabel:  "large",
		Material:   "Rubber",
		Color:      [3]float64{1, 0, 0},
		ColorLabel: "red",
	}, md)
	assert.Equal(t, "large red Rubber cube", obj.Name)
}

func TestNewRandomObject_Metal(t *testing.T) {
	cat := newStubCatalog()
	cat.size = 0.5
	rng := &testsupport.ScriptedRand{Ints: []int{2, 0}}

	obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", rng)
	require.NoError(t, err)

	metal, err := material.Params(material.Metal)
	require.NoError(t, err)

	assert.Equal(t, "sphere", obj.AssetID)
	assert.Equal(t, 1.0, obj.Material.Metallic)
	assert.Equal(t, metal.Shading.Roughness, obj.Material.Roughness)
	assert.InDelta(t, metal.Density*0.125, obj.Mass(), 1e-12)

	md, _ := obj.Metadata()
	assert.Equal(t, "Metal", md.Material)
}

func TestNewRandomObject_DrawOrder(t *testing.T) {
	cat := newStubCatalog()
	rng := &testsupport.ScriptedRand{Ints: []int{4, 1}}

	obj, err := NewRandomObject(cat, ObjectSetKuBasic, "stub", "stub", rng)
	require.NoError(t, err)
	assert.Equal(t, "torus", obj.AssetID)

	_, ints := rng.Draws()
	assert.Equal(t, 2, ints, "one draw for the shape and one for the family")
}

func TestNewRandomObject_InvalidObjectSet(t *testing.T) {
	cat := newStubCatalog()
	rng := &testsupport.ScriptedRand{}

	obj, err := NewRandomObject(cat, "shapenet", "stub", "stub", rng)
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	assert.Empty(t, cat.created, "no object may be created")

	floats, ints := rng.Draws()
	assert.Zero(t, floats)
	assert.Zero(t, ints)
}

func TestNewRandomObject_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name        string
		setup       func(*stubCatalog)
		wantCreated int
	}{
		{"Size strategy", func(c *stubCatalog) { c.sizeErr = boom }, 0},
		{"Color strategy", func(c *stubCatalog) { c.colorErr = boom }, 0},
		{"Create", func(c *stubCatalog) { c.createErr = boom }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := newStubCatalog()
			tt.setup(cat)
			obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", &testsupport.ScriptedRand{})
			assert.Nil(t, obj)
			assert.Same(t, boom, err)
			assert.Len(t, cat.created, tt.wantCreated)
		})
	}
}

func TestNewRandomObject_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cat := newStubCatalog()
	clevr := map[string]bool{}
	for _, s := range CLEVRObjects() {
		clevr[s] = true
	}

	for i := 0; i < 200; i++ {
		cat.size = 0.5 + rng.Float64()
		obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", rng)
		require.NoError(t, err)

		assert.True(t, clevr[obj.AssetID], "shape %q outside the clevr vocabulary", obj.AssetID)

		md, ok := obj.Metadata()
		require.True(t, ok)
		params, err := material.Params(material.Family(md.Material))
		require.NoError(t, err, "metadata material must be a known family")

		want := params.Density * math.Pow(md.Size, 3)
		assert.InDelta(t, want, obj.Mass(), 1e-9)

		parts, err := ParseObjectName(obj.Name)
		require.NoError(t, err)
		assert.Equal(t, NameParts{
			SizeLabel:  md.SizeLabel,
			ColorLabel: md.ColorLabel,
			Material:   material.Family(md.Material),
			Shape:      md.Shape,
		}, parts)
	}
}

func TestNewRandomObject_BothFamiliesDrawn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cat := newStubCatalog()
	seen := map[string]int{}
	for i := 0; i < 100; i++ {
		obj, err := NewRandomObject(cat, ObjectSetKuBasic, "stub", "stub", rng)
		require.NoError(t, err)
		md, _ := obj.Metadata()
		seen[md.Material]++
	}
	assert.Len(t, seen, 2)
}

func TestObjectSet(t *testing.T) {
	tests := []struct {
		name    string
		set     string
		want    []string
		wantErr bool
	}{
		{"CLEVR", ObjectSetCLEVR, []string{"cube", "cylinder", "sphere"}, false},
		{"KuBasic", ObjectSetKuBasic, []string{
			"cube", "cylinder", "sphere", "cone", "torus", "gear",
			"torus-knot", "sponge", "spot", "teapot", "suzanne",
		}, false},
		{"Unknown", "CLEVR", nil, true},
		{"Empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectSet(tt.set)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectSet_ReturnsCopy(t *testing.T) {
	shapes := CLEVRObjects()
	shapes[0] = "teapot"
	assert.Equal(t, "cube", CLEVRObjects()[0])
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		name string
		in   NameParts
		want string
	}{
		{"All labels", NameParts{"small", "cyan", material.Metal, "cylinder"}, "small cyan Metal cylinder"},
		{"Empty size label", NameParts{"", "#ff0000", material.Rubber, "cube"}, "- #ff0000 Rubber cube"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ObjectName(tt.in.SizeLabel, tt.in.ColorLabel, tt.in.Material, tt.in.Shape)
			assert.Equal(t, tt.want, got)

			parts, err := ParseObjectName(got)
			require.NoError(t, err)
			assert.Equal(t, tt.in, parts)
		})
	}
}

func TestNewRandomObject_RejectsUnparseableLabels(t *testing.T) {
	tests := []struct {
		name       string
		sizeLabel  string
		colorLabel string
	}{
		{"Color with space", "large", "light blue"},
		{"Size with space", "extra large", "red"},
		{"Size with tab", "large\t", "red"},
		{"Reserved color", "large", "-"},
		{"Reserved size", "-", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := newStubCatalog()
			cat.sizeLabel = tt.sizeLabel
			cat.colorLabel = tt.colorLabel

			obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", &testsupport.ScriptedRand{})
			assert.Nil(t, obj)
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
			assert.Empty(t, cat.created)
		})
	}
}

func TestNewRandomObject_EmptyLabelsRoundTrip(t *testing.T) {
	cat := newStubCatalog()
	cat.sizeLabel = ""
	cat.colorLabel = ""

	obj, err := NewRandomObject(cat, ObjectSetCLEVR, "stub", "stub", &testsupport.ScriptedRand{})
	require.NoError(t, err)

	parts, err := ParseObjectName(obj.Name)
	require.NoError(t, err)
	assert.Empty(t, parts.SizeLabel)
	assert.Empty(t, parts.ColorLabel)
	assert.Equal(t, "cube", parts.Shape)
}

func TestCheckLabel(t *testing.T) {
	for _, label := range []string{"", "red", "#ff00aa", "small", "x-large"} {
		assert.NoError(t, CheckLabel(label), "label %q", label)
	}
	for _, label := range []string{"-", "light blue", " red", "red\n"} {
		assert.ErrorIs(t, CheckLabel(label), core.ErrInvalidConfiguration, "label %q", label)
	}
}

func TestParseObjectName_Malformed(t *testing.T) {
	for _, name := range []string{"", "cube", "large red Rubber", "a b c d e"} {
		_, err := ParseObjectName(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestPopulateObjects(t *testing.T) {
	s := New()
	cat := newStubCatalog()
	var lines []string
	opts := PopulateOptions{
		ObjectSet:     ObjectSetKuBasic,
		SizeStrategy:  "stub",
		ColorStrategy: "stub",
		Logger:        loggerFunc(func(format string, args ...interface{}) { lines = append(lines, format) }),
	}

	created, err := s.PopulateObjects(cat, 5, opts, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, created, 5)
	assert.Equal(t, created, s.Objects)
	assert.Len(t, s.Metadata(), 5)
	assert.Len(t, lines, 5)
}

func TestPopulateObjects_StopsAtFirstError(t *testing.T) {
	s := New()
	cat := newStubCatalog()
	cat.colorErr = core.ErrUnknownStrategy

	created, err := s.PopulateObjects(cat, 3, PopulateOptions{ObjectSet: ObjectSetCLEVR}, &testsupport.ScriptedRand{})
	assert.ErrorIs(t, err, core.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "object 1 of 3")
	assert.Empty(t, created)
	assert.Empty(t, s.Objects)
}

type loggerFunc func(format string, args ...interface{})

func (f loggerFunc) Printf(format string, args ...interface{}) { f(format, args...) }

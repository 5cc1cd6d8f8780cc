package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-populator/pkg/catalog"
	"github.com/df07/go-scene-populator/pkg/config"
	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/lights"
	"github.com/df07/go-scene-populator/pkg/renderer"
	"github.com/df07/go-scene-populator/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run populates one scene and writes its description to stdout as YAML
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	rng, seed := core.NewSeededRand(cfg.Seed)
	logger.Info("populating scene", "seed", seed, "object_set", cfg.ObjectSet, "objects", cfg.Objects)

	presets := lights.DefaultPresets()
	if cfg.PresetsFile != "" {
		if presets, err = lights.LoadPresets(cfg.PresetsFile); err != nil {
			return err
		}
	}

	cat := catalog.NewDefault()
	if cfg.ManifestFile != "" {
		if cat, err = catalog.Load(cfg.ManifestFile, nil); err != nil {
			return err
		}
	}

	r, err := renderer.New(cfg.Renderer)
	if err != nil {
		return err
	}

	s := scene.New()

	rig, err := presets.Build(lights.Preset(cfg.LightPreset), cfg.LightJitter, rng)
	if err != nil {
		return err
	}
	s.AddLight(rig...)

	_, err = s.PopulateObjects(cat, cfg.Objects, scene.PopulateOptions{
		ObjectSet:     cfg.ObjectSet,
		SizeStrategy:  cfg.SizeStrategy,
		ColorStrategy: cfg.ColorStrategy,
		Logger:        core.NewSlogLogger(logger.With("stage", "objects")),
	}, rng)
	if err != nil {
		return err
	}

	if _, err := scene.AttachBackdrop(cat, s, r, cfg.HDRI); err != nil {
		return fmt.Errorf("failed to attach backdrop: %w", err)
	}

	return writeReport(stdout, newReport(seed, cfg, s, r))
}

func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("populate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "TOML config file (flags override its values)")
	seed := fs.Int64("seed", 0, "Random seed, 0 for time-based")
	objects := fs.Int("objects", 0, "Number of random objects")
	objectSet := fs.String("object-set", "", "Shape vocabulary: 'clevr' or 'kubasic'")
	size := fs.String("size", "", "Size strategy: 'uniform', 'clevr' or 'const'")
	color := fs.String("color", "", "Color strategy: 'clevr', 'uniform_hue' or 'gray'")
	preset := fs.String("lights", "", "Light preset: 'clevr' or 'kubasic'")
	jitter := fs.Float64("jitter", 0, "Relative light intensity jitter in [0, 1]")
	hdri := fs.String("hdri", "", "Backdrop image bound to the dome")
	backend := fs.String("renderer", "", "Renderer backend: 'nodegraph' or 'headless'")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Scene Populator")
		fmt.Fprintln(stderr, "Usage: populate [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "The populated scene is written to stdout as YAML.")
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	// Only flags given explicitly override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "objects":
			cfg.Objects = *objects
		case "object-set":
			cfg.ObjectSet = *objectSet
		case "size":
			cfg.SizeStrategy = *size
		case "color":
			cfg.ColorStrategy = *color
		case "lights":
			cfg.LightPreset = *preset
		case "jitter":
			cfg.LightJitter = *jitter
		case "hdri":
			cfg.HDRI = *hdri
		case "renderer":
			cfg.Renderer = *backend
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, nil
}

type lightReport struct {
	Name      string     `yaml:"name"`
	Type      string     `yaml:"type"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position,flow"`
	Direction [3]float64 `yaml:"direction,flow"`
}

type objectReport struct {
	Name        string          `yaml:"name"`
	Mass        float64         `yaml:"mass"`
	Friction    float64         `yaml:"friction"`
	Restitution float64         `yaml:"restitution"`
	Metadata    *scene.Metadata `yaml:"metadata,omitempty"`
}

type report struct {
	Seed       int64          `yaml:"seed"`
	ObjectSet  string         `yaml:"object_set"`
	Renderer   string         `yaml:"renderer"`
	Lights     []lightReport  `yaml:"lights"`
	Objects    []objectReport `yaml:"objects"`
	Background string         `yaml:"background,omitempty"`
	HDRI       string         `yaml:"hdri,omitempty"`

	// Average color of the bound backdrop image, when the renderer holds one
	BackdropColor string `yaml:"backdrop_color,omitempty"`
}

// backdropColorer is implemented by renderers that can report on a bound backdrop image
type backdropColorer interface {
	BackdropColor(obj *scene.Object) (core.Vec3, bool)
}

func newReport(seed int64, cfg config.Config, s *scene.Scene, r scene.Renderer) report {
	rep := report{
		Seed:      seed,
		ObjectSet: cfg.ObjectSet,
		Renderer:  cfg.Renderer,
		HDRI:      cfg.HDRI,
	}
	for _, l := range s.Lights {
		rep.Lights = append(rep.Lights, lightReport{
			Name:      l.Name,
			Type:      string(l.Type),
			Intensity: l.Intensity,
			Position:  l.Position.Array(),
			Direction: l.Direction.Array(),
		})
	}
	for _, o := range s.Foreground() {
		entry := objectReport{
			Name:        o.Name,
			Mass:        o.Mass(),
			Friction:    o.Friction(),
			Restitution: o.Restitution(),
		}
		if md, ok := o.Metadata(); ok {
			entry.Metadata = &md
		}
		rep.Objects = append(rep.Objects, entry)
	}
	if bg := s.Background(); bg != nil {
		rep.Background = bg.Name
		if bc, ok := r.(backdropColorer); ok {
			if avg, ok := bc.BackdropColor(bg); ok {
				rep.BackdropColor = avg.Hex()
			}
		}
	}
	return rep
}

func writeReport(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to write scene report: %w", err)
	}
	return enc.Close()
}

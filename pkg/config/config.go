// Package config holds the settings for populating a scene, read from a TOML file
// and overridable from the command line.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-scene-populator/pkg/core"
	"github.com/df07/go-scene-populator/pkg/lights"
	"github.com/df07/go-scene-populator/pkg/sampling"
	"github.com/df07/go-scene-populator/pkg/scene"
)

// Config controls one scene population run
type Config struct {
	Seed int64 `toml:"seed"` // 0 picks a time-based seed

	ObjectSet     string `toml:"object_set"`
	SizeStrategy  string `toml:"size_strategy"`
	ColorStrategy string `toml:"color_strategy"`
	Objects       int    `toml:"objects"`

	LightPreset string  `toml:"light_preset"`
	LightJitter float64 `toml:"light_jitter"`

	HDRI     string `toml:"hdri"`
	Renderer string `toml:"renderer"`

	// Optional files that extend the built-in presets and asset catalog
	PresetsFile  string `toml:"presets_file"`
	ManifestFile string `toml:"manifest_file"`

	LogLevel string `toml:"log_level"`
}

// Default returns the settings of a plain CLEVR scene
func Default() Config {
	return Config{
		ObjectSet:     scene.ObjectSetCLEVR,
		SizeStrategy:  sampling.SizeCLEVR,
		ColorStrategy: sampling.ColorCLEVR,
		Objects:       6,
		LightPreset:   string(lights.PresetCLEVR),
		LightJitter:   0,
		Renderer:      "headless",
		LogLevel:      "info",
	}
}

// Load reads a TOML file over the defaults. Fields missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to expand config path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses TOML into cfg, rejecting unknown keys
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: failed to parse config: %v", core.ErrInvalidConfiguration, err)
	}
	return nil
}

// Encode writes cfg as TOML
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// ExpandPaths resolves a leading ~ in every path setting
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.HDRI, &c.PresetsFile, &c.ManifestFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the settings that do not depend on loaded presets or catalogs
func (c Config) Validate() error {
	if _, err := scene.ObjectSet(c.ObjectSet); err != nil {
		return err
	}
	if c.Objects < 0 {
		return fmt.Errorf("%w: objects cannot be negative (%d)", core.ErrInvalidConfiguration, c.Objects)
	}
	if c.LightJitter < 0 || c.LightJitter > 1 {
		return fmt.Errorf("%w: light_jitter must lie in [0, 1], got %v", core.ErrInvalidConfiguration, c.LightJitter)
	}
	if c.LightPreset == "" {
		return fmt.Errorf("%w: light_preset is required", core.ErrInvalidConfiguration)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", core.ErrInvalidConfiguration, c.LogLevel)
	}
	return level, nil
}

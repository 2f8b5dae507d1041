// Package config loads and validates spritegen configuration from TOML.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/IndyHallLabs/css-sprite-generator/internal/imaging"
	"github.com/IndyHallLabs/css-sprite-generator/internal/sprite"
)

// Config mirrors the CLI flags plus the explicit pair list only the config
// file can supply.
type Config struct {
	// Directory is scanned for pairs when Pairs is empty.
	Directory string `toml:"directory"`

	// OutputFormat selects the sprite codec: png, jpeg, or gif.
	OutputFormat string `toml:"output_format"`

	// PrimaryPattern and SecondaryPattern classify directory entries
	// during discovery; the first capture group of each is the base key.
	PrimaryPattern   string `toml:"primary_pattern"`
	SecondaryPattern string `toml:"secondary_pattern"`

	// Background is the canvas fill color as #RRGGBB.
	Background string `toml:"background"`

	// JPEGQuality applies to JPEG output only (1-100).
	JPEGQuality int `toml:"jpeg_quality"`

	// ContinueOnError collects per-pair failures instead of halting the
	// batch at the first one.
	ContinueOnError bool `toml:"continue_on_error"`

	// Pairs lists explicit [primary, secondary] path pairs, bypassing
	// directory discovery.
	Pairs [][]string `toml:"pairs"`
}

// Default returns the built-in configuration: PNG output, the default
// pairing patterns, a black canvas.
func Default() Config {
	return Config{
		OutputFormat:     "png",
		PrimaryPattern:   sprite.DefaultPrimaryPattern,
		SecondaryPattern: sprite.DefaultSecondaryPattern,
		Background:       "#000000",
		JPEGQuality:      imaging.DefaultJPEGQuality,
	}
}

// Load reads a TOML file overlaid on the defaults. The result is not yet
// validated; callers apply flag overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that later stages would otherwise fail on
// mid-batch.
func (c Config) Validate() error {
	if _, err := imaging.ParseFormat(c.OutputFormat); err != nil {
		return err
	}
	if _, err := sprite.CompilePatterns(c.PrimaryPattern, c.SecondaryPattern); err != nil {
		return err
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("background %q: not a #RRGGBB color", c.Background)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	for i, p := range c.Pairs {
		if len(p) != 2 || p[0] == "" || p[1] == "" {
			return fmt.Errorf("pairs[%d] must list exactly two non-empty paths", i)
		}
	}
	return nil
}

// BackgroundColor returns the parsed canvas fill.
func (c Config) BackgroundColor() (color.Color, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: not a #RRGGBB color", c.Background)
	}
	return col, nil
}

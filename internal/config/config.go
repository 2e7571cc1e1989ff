// Package config holds the static configuration consumed by the canvas:
// surface size, axis pole labels, phrase presets, category colors and the
// pointer tolerances.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"axescanvas/internal/gesture"
	"axescanvas/internal/points"
	"axescanvas/pkg/colorutil"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Canvas is the fixed raster size, set once at startup.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

// Axes names the four poles of the two continuums.
type Axes struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// Config is the full configuration.
type Config struct {
	Canvas        Canvas            `yaml:"canvas"`
	Axes          Axes              `yaml:"axes"`
	HitRadius     float64           `yaml:"hit_radius"`
	DragThreshold float64           `yaml:"drag_threshold"`
	Phrases       []string          `yaml:"phrases"`
	Colors        map[string]string `yaml:"colors"`
	Neutral       string            `yaml:"neutral"`
}

// DefaultPhrases are the preset key phrases offered next to the canvas.
var DefaultPhrases = []string{
	"collective intelligence",
	"metabolic engineering",
	"posthuman",
	"biotic game",
	"somatic epistemologies",
	"decentralized human rights",
	"writing",
	"decentralized",
	"educational platform",
	"wood archaeology",
	"inter-constituent collaboration",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 900, Height: 600, Margin: 60},
		Axes: Axes{
			Left:   "Techno",
			Right:  "Poetics",
			Top:    "Local",
			Bottom: "Cosmo",
		},
		HitRadius:     points.DefaultHitRadius,
		DragThreshold: gesture.DefaultDragThreshold,
		Phrases:       append([]string(nil), DefaultPhrases...),
		Colors: map[string]string{
			points.Personal.String():         "#2c7be5",
			points.ResearchProject.String():  "#e67e22",
			points.ProjectKeyPhrase.String(): "#9b59b6",
		},
		Neutral: "#555555",
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Config: loaded %s (%d phrases)", path, len(cfg.Phrases))
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set,
// then validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks ranges. Unknown category names and malformed colors are
// not errors; they fall back to the neutral color when drawn.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Margin < 0 || 2*c.Canvas.Margin >= c.Canvas.Width || 2*c.Canvas.Margin >= c.Canvas.Height:
		return fmt.Errorf("%w: margin %d", ErrInvalid, c.Canvas.Margin)
	case c.HitRadius <= 0:
		return fmt.Errorf("%w: hit_radius %v", ErrInvalid, c.HitRadius)
	case c.DragThreshold < 0:
		return fmt.Errorf("%w: drag_threshold %v", ErrInvalid, c.DragThreshold)
	}
	return nil
}

// Palette builds the category color palette.
func (c Config) Palette() colorutil.Palette {
	neutral, ok := colorutil.ParseHex(c.Neutral, colorutil.Neutral)
	if !ok && c.Neutral != "" {
		log.Printf("Config: neutral color %q is not a hex color, using %s", c.Neutral, colorutil.Hex(colorutil.Neutral))
	}

	colors := make(map[string]color.RGBA, len(c.Colors))
	for name, hex := range c.Colors {
		if _, known := points.ParseCategory(name); !known {
			log.Printf("Config: color for unknown category %q ignored", name)
			continue
		}
		col, ok := colorutil.ParseHex(hex, neutral)
		if !ok {
			log.Printf("Config: color %q for %q is not a hex color, using neutral", hex, name)
			continue
		}
		cat, _ := points.ParseCategory(name)
		colors[cat.String()] = col
	}
	return colorutil.NewPalette(colors, neutral)
}

// Package colorutil provides shared color utilities for the annotation canvas.
package colorutil

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Common colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Neutral = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// ParseHex parses a "#rrggbb" (or "#rgb") string. Malformed input yields
// fallback and ok=false; it is never an error for callers.
func ParseHex(s string, fallback color.RGBA) (c color.RGBA, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return fallback, false
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// Hex formats a color as "#rrggbb".
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Palette maps names to display colors with a neutral fallback for any
// name it does not know.
type Palette struct {
	colors  map[string]color.RGBA
	neutral color.RGBA
}

// NewPalette creates a palette. Keys are matched case-insensitively.
func NewPalette(colors map[string]color.RGBA, neutral color.RGBA) Palette {
	p := Palette{colors: make(map[string]color.RGBA, len(colors)), neutral: neutral}
	for name, c := range colors {
		p.colors[normalize(name)] = c
	}
	return p
}

// Color returns the color for name, or the neutral color if name is unknown.
func (p Palette) Color(name string) color.RGBA {
	if c, ok := p.colors[normalize(name)]; ok {
		return c
	}
	return p.Neutral()
}

// Neutral returns the fallback color.
func (p Palette) Neutral() color.RGBA {
	if p.neutral.A == 0 {
		return Neutral
	}
	return p.neutral
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

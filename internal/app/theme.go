package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CanvasTheme provides a custom theme for the application.
type CanvasTheme struct{}

var _ fyne.Theme = (*CanvasTheme)(nil)

func (t *CanvasTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x2C, G: 0x7B, B: 0xE5, A: 0xFF} // Personal Trait blue
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x9B, G: 0x59, B: 0xB6, A: 0x60} // Key phrase purple
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *CanvasTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CanvasTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CanvasTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	default:
		return theme.DefaultTheme().Size(name)
	}
}

// Package render draws the annotation plane: two axes with their pole
// labels and every visible point as a colored disc with its label.
//
// Rendering is a pure function of the Scene. The same scene always
// produces the same pixels, so callers may redraw on every pointer move.
package render

import (
	"image"
	"image/color"
	"math"

	"axescanvas/internal/config"
	"axescanvas/internal/filter"
	"axescanvas/internal/points"
	"axescanvas/pkg/colorutil"
)

// Drawing constants, in canvas pixels.
const (
	PointRadius     = 5
	HighlightRadius = 9
	labelOffsetX    = 8
	labelOffsetY    = 4
	poleInset       = 4
	poleGap         = 6
	poleOutset      = 14
)

var (
	background      = colorutil.White
	axisColor       = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 255}
	poleLabelColor  = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}
	pointLabelColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
)

// Scene is everything the renderer depends on.
type Scene struct {
	Width, Height int
	Margin        int
	Axes          config.Axes
	Points        []points.Point
	Filters       filter.State
	Palette       colorutil.Palette

	// Highlight is the hovered or dragged point, drawn with a ring.
	Highlight    points.ID
	HasHighlight bool
}

// NewScene creates a scene with the surface settings from cfg and no points.
func NewScene(cfg config.Config) Scene {
	return Scene{
		Width:   cfg.Canvas.Width,
		Height:  cfg.Canvas.Height,
		Margin:  cfg.Canvas.Margin,
		Axes:    cfg.Axes,
		Filters: filter.Default(),
		Palette: cfg.Palette(),
	}
}

// Render draws sc onto a new image of the scene's size.
func Render(sc Scene) *image.RGBA {
	output := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	Draw(output, sc)
	return output
}

// Draw clears output and draws sc onto it.
func Draw(output *image.RGBA, sc Scene) {
	fill(output, background)
	drawAxes(output, sc)
	drawPoints(output, sc)
}

// VisiblePoints returns the points that pass the filters, in draw order.
func VisiblePoints(sc Scene) []points.Point {
	var out []points.Point
	for _, p := range sc.Points {
		if sc.Filters.Visible(p.Category) {
			out = append(out, p)
		}
	}
	return out
}

func drawAxes(output *image.RGBA, sc Scene) {
	w, h, m := sc.Width, sc.Height, sc.Margin
	cx, cy := w/2, h/2

	drawLine(output, m, cy, w-m, cy, axisColor, 1)
	drawLine(output, cx, m, cx, h-m, axisColor, 1)

	drawText(output, sc.Axes.Left, m+poleInset, cy-poleGap, alignLeft, baselineBottom, poleLabelColor)
	drawText(output, sc.Axes.Right, w-m-poleInset, cy-poleGap, alignRight, baselineBottom, poleLabelColor)
	drawText(output, sc.Axes.Top, cx, m-poleOutset, alignCenter, baselineBottom, poleLabelColor)
	drawText(output, sc.Axes.Bottom, cx, h-m+poleOutset, alignCenter, baselineTop, poleLabelColor)
}

func drawPoints(output *image.RGBA, sc Scene) {
	for _, p := range VisiblePoints(sc) {
		col := sc.Palette.Color(p.Category.String())
		x, y := p.Pos.X, p.Pos.Y

		if sc.HasHighlight && p.ID == sc.Highlight {
			drawCircle(output, x, y, HighlightRadius, col, false, 2)
		}
		drawCircle(output, x, y, PointRadius, col, true, 0)

		lx := int(math.Round(x)) + labelOffsetX
		ly := int(math.Round(y)) + labelOffsetY
		drawText(output, p.Label, lx, ly, alignLeft, baselineTop, pointLabelColor)
	}
}

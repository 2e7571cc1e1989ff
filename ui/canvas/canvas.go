// Package canvas provides the annotation canvas widget: a fixed-size raster
// that feeds pointer events to the application state and redraws whenever
// the points, filters or highlight change.
package canvas

import (
	"image"
	"sync/atomic"

	"axescanvas/internal/app"
	"axescanvas/internal/render"
	"axescanvas/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// AnnotationCanvas displays the plane and turns mouse input into pointer
// down/move/up/leave events in canvas pixel space.
type AnnotationCanvas struct {
	widget.BaseWidget

	state   *app.State
	raster  *fynecanvas.Raster
	backing geometry.Size

	// Last rendered output for sampling. Written on the draw thread.
	lastOutput atomic.Pointer[image.RGBA]
}

var (
	_ desktop.Mouseable = (*AnnotationCanvas)(nil)
	_ desktop.Hoverable = (*AnnotationCanvas)(nil)
)

// NewAnnotationCanvas creates a canvas bound to state.
func NewAnnotationCanvas(state *app.State) *AnnotationCanvas {
	cfg := state.Config()
	ac := &AnnotationCanvas{
		state:   state,
		backing: geometry.NewSize(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height)),
	}

	// The raster always renders at the configured pixel size and is scaled
	// to whatever size the layout gives the widget.
	ac.raster = fynecanvas.NewRaster(ac.draw)
	ac.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	ac.raster.SetMinSize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	ac.ExtendBaseWidget(ac)

	redraw := func(interface{}) { ac.Refresh() }
	state.On(app.EventPointsChanged, redraw)
	state.On(app.EventFiltersChanged, redraw)
	state.On(app.EventHighlightChanged, redraw)

	return ac
}

// CreateRenderer implements fyne.Widget.
func (ac *AnnotationCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ac.raster)
}

// MinSize returns the configured surface size.
func (ac *AnnotationCanvas) MinSize() fyne.Size {
	return ac.raster.MinSize()
}

// Refresh redraws the raster.
func (ac *AnnotationCanvas) Refresh() {
	ac.raster.Refresh()
}

// GetRenderedOutput returns the last rendered canvas output for sampling.
func (ac *AnnotationCanvas) GetRenderedOutput() *image.RGBA {
	return ac.lastOutput.Load()
}

// draw is the raster drawing function.
func (ac *AnnotationCanvas) draw(w, h int) image.Image {
	img := render.Render(ac.state.Scene())
	ac.lastOutput.Store(img)
	return img
}

// viewport describes where the widget sits on screen for the event. The
// event carries both the widget-relative and the absolute position, so the
// difference is the widget's on-screen origin.
func (ac *AnnotationCanvas) viewport(ev *fyne.PointEvent) geometry.Viewport {
	origin := ev.AbsolutePosition.Subtract(ev.Position)
	size := ac.Size()
	return geometry.Viewport{
		Origin:  geometry.NewPoint2D(float64(origin.X), float64(origin.Y)),
		Display: geometry.NewSize(float64(size.Width), float64(size.Height)),
		Backing: ac.backing,
	}
}

// toCanvasSpace converts an event position to canvas pixel coordinates.
func (ac *AnnotationCanvas) toCanvasSpace(ev *fyne.PointEvent) geometry.Point2D {
	client := geometry.NewPoint2D(float64(ev.AbsolutePosition.X), float64(ev.AbsolutePosition.Y))
	return ac.viewport(ev).ToCanvasSpace(client)
}

// MouseDown handles a button press. Only the primary button starts a gesture.
func (ac *AnnotationCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ac.state.PointerDown(ac.toCanvasSpace(&ev.PointEvent))
}

// MouseUp handles a button release.
func (ac *AnnotationCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ac.state.PointerUp(ac.toCanvasSpace(&ev.PointEvent))
}

// MouseIn handles the pointer entering the widget.
func (ac *AnnotationCanvas) MouseIn(ev *desktop.MouseEvent) {
	ac.state.PointerMove(ac.toCanvasSpace(&ev.PointEvent))
}

// MouseMoved handles pointer motion, with or without a button held.
func (ac *AnnotationCanvas) MouseMoved(ev *desktop.MouseEvent) {
	ac.state.PointerMove(ac.toCanvasSpace(&ev.PointEvent))
}

// MouseOut handles the pointer leaving the widget.
func (ac *AnnotationCanvas) MouseOut() {
	ac.state.PointerLeave()
}

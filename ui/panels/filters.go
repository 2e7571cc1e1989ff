package panels

import (
	"fmt"

	"axescanvas/internal/app"
	"axescanvas/internal/filter"
	"axescanvas/internal/points"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FiltersPanel has one visibility checkbox per category, each next to a
// swatch of the category's colour.
type FiltersPanel struct {
	state     *app.State
	container *fyne.Container

	checks     map[points.Category]*widget.Check
	countLabel *widget.Label
}

// NewFiltersPanel creates a new filters panel.
func NewFiltersPanel(state *app.State) *FiltersPanel {
	fp := &FiltersPanel{
		state:  state,
		checks: make(map[points.Category]*widget.Check),
	}

	palette := state.Config().Palette()
	filters := state.Filters()

	rows := []fyne.CanvasObject{widget.NewLabelWithStyle("Show", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})}
	for _, c := range points.Categories {
		c := c
		swatch := canvas.NewRectangle(palette.Color(c.String()))
		swatch.SetMinSize(fyne.NewSize(14, 14))
		swatch.CornerRadius = 7

		check := widget.NewCheck(c.String(), nil)
		// Set before wiring OnChanged so construction does not emit.
		check.SetChecked(filters.Visible(c))
		check.OnChanged = func(on bool) {
			fp.state.SetFilter(c, on)
		}
		fp.checks[c] = check

		rows = append(rows, container.NewHBox(container.NewCenter(swatch), check))
	}

	fp.countLabel = widget.NewLabel("")
	fp.updateCount()
	rows = append(rows, widget.NewSeparator(), fp.countLabel)

	fp.container = container.NewVBox(rows...)

	state.On(app.EventFiltersChanged, func(data interface{}) {
		if f, ok := data.(filter.State); ok {
			fp.sync(f)
		}
		fp.updateCount()
	})
	state.On(app.EventPointsChanged, func(interface{}) {
		fp.updateCount()
	})

	return fp
}

// Container returns the panel container.
func (fp *FiltersPanel) Container() fyne.CanvasObject {
	return fp.container
}

// sync brings the checkboxes in line with f without re-emitting.
func (fp *FiltersPanel) sync(f filter.State) {
	for c, check := range fp.checks {
		if check.Checked == f.Visible(c) {
			continue
		}
		handler := check.OnChanged
		check.OnChanged = nil
		check.SetChecked(f.Visible(c))
		check.OnChanged = handler
	}
}

func (fp *FiltersPanel) updateCount() {
	all := fp.state.Points()
	filters := fp.state.Filters()
	shown := 0
	for _, p := range all {
		if filters.Visible(p.Category) {
			shown++
		}
	}
	fp.countLabel.SetText(fmt.Sprintf("%d of %d points shown", shown, len(all)))
}

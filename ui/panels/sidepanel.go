// Package panels provides UI panels for the application.
package panels

import (
	"axescanvas/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	// Tab content
	filtersPanel *FiltersPanel
	phrasesPanel *PhrasesPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.filtersPanel = NewFiltersPanel(state)
	sp.phrasesPanel = NewPhrasesPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Filters", sp.filtersPanel.Container()),
		container.NewTabItem("Phrases", container.NewVScroll(sp.phrasesPanel.Container())),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"axescanvas/internal/app"
	"axescanvas/internal/version"
	"axescanvas/ui/canvas"
	"axescanvas/ui/dialogs"
	"axescanvas/ui/panels"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	appID    = "org.axescanvas.app"
	appTitle = "Axes Canvas"

	prefKeySplitOffset = "sidePanelOffset"
	defaultSplitOffset = 0.25
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	canvas    *canvas.AnnotationCanvas
	sidePanel *panels.SidePanel
	editor    *dialogs.PointDialog
	split     *container.Split
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewAnnotationCanvas(mw.state)

	mw.sidePanel = panels.NewSidePanel(mw.state)

	mw.editor = dialogs.NewPointDialog(mw.state, mw.Window)
	mw.state.SetSurface(mw.editor)

	mw.statusBar = widget.NewLabel("Click empty space to add a point, click a point to edit it, drag to move it.")

	// Create main layout: side panel | canvas
	mw.split = container.NewHSplit(
		mw.sidePanel.Container(),
		container.NewCenter(mw.canvas),
	)
	mw.split.SetOffset(mw.app.Preferences().FloatWithFallback(prefKeySplitOffset, defaultSplitOffset))

	// Main container with status bar at bottom
	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.split,                          // center
	)

	mw.SetContent(content)

	cfg := mw.state.Config()
	mw.Resize(fyne.NewSize(float32(cfg.Canvas.Width)*1.3, float32(cfg.Canvas.Height)+80))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventStatus, func(data interface{}) {
		if msg, ok := data.(string); ok {
			mw.statusBar.SetText(msg)
		}
	})

	mw.SetCloseIntercept(func() {
		mw.app.Preferences().SetFloat(prefKeySplitOffset, mw.split.Offset)
		mw.Close()
	})
}

// onAbout shows the about dialog.
func (mw *MainWindow) onAbout() {
	axes := mw.state.Config().Axes
	dialog.ShowInformation("About "+appTitle,
		fmt.Sprintf("%s %s\n\nPlace labelled points on the %s/%s and %s/%s plane.",
			appTitle, version.String(), axes.Left, axes.Right, axes.Top, axes.Bottom),
		mw.Window)
}

// Run opens the main window and blocks until it is closed.
func Run(state *app.State) {
	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.CanvasTheme{})

	mw := New(fyneApp, state)
	log.Printf("Starting %s v%s", appTitle, version.Version)
	mw.ShowAndRun()
}

package panels

import (
	"axescanvas/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PhrasesPanel lists the phrase presets. Selecting one prefills the label of
// the next point added; selecting it again clears the selection.
type PhrasesPanel struct {
	state     *app.State
	container *fyne.Container

	buttons map[string]*widget.Button
	hint    *widget.Label
}

// NewPhrasesPanel creates a new phrases panel.
func NewPhrasesPanel(state *app.State) *PhrasesPanel {
	pp := &PhrasesPanel{
		state:   state,
		buttons: make(map[string]*widget.Button),
	}

	rows := []fyne.CanvasObject{widget.NewLabelWithStyle("Key phrases", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})}
	for _, phrase := range state.Config().Phrases {
		phrase := phrase
		btn := widget.NewButton(phrase, func() {
			pp.state.TogglePhrase(phrase)
		})
		btn.Alignment = widget.ButtonAlignLeading
		pp.buttons[phrase] = btn
		rows = append(rows, btn)
	}

	pp.hint = widget.NewLabel("")
	pp.hint.Wrapping = fyne.TextWrapWord
	pp.hint.Importance = widget.LowImportance
	rows = append(rows, pp.hint)

	pp.container = container.NewVBox(rows...)

	active, _ := state.ActivePhrase()
	pp.highlight(active)
	state.On(app.EventPhraseChanged, func(data interface{}) {
		active, _ := data.(string)
		pp.highlight(active)
	})

	return pp
}

// Container returns the panel container.
func (pp *PhrasesPanel) Container() fyne.CanvasObject {
	return pp.container
}

// highlight marks the button for active, or none when active is "".
func (pp *PhrasesPanel) highlight(active string) {
	for phrase, btn := range pp.buttons {
		want := widget.MediumImportance
		if phrase == active {
			want = widget.HighImportance
		}
		if btn.Importance != want {
			btn.Importance = want
			btn.Refresh()
		}
	}
	if active == "" {
		pp.hint.SetText("Click a phrase, then click the canvas to place it.")
	} else {
		pp.hint.SetText("Click the canvas to place this phrase.")
	}
}

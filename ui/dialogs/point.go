// Package dialogs provides application dialogs.
package dialogs

import (
	"errors"
	"fmt"
	"log"

	"axescanvas/internal/app"
	"axescanvas/internal/editor"
	"axescanvas/internal/points"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// PointDialog is the modal add/edit form. It implements editor.Surface;
// every Present builds the form from scratch so nothing leaks between
// invocations.
type PointDialog struct {
	state  *app.State
	window fyne.Window

	dlg *dialog.CustomDialog

	// Form fields
	labelEntry    *widget.Entry
	categoryRadio *widget.RadioGroup
	errorLabel    *widget.Label

	// Buttons
	saveButton   *widget.Button
	cancelButton *widget.Button
	deleteButton *widget.Button
}

var _ editor.Surface = (*PointDialog)(nil)

// NewPointDialog creates a dialog that commits through state.
func NewPointDialog(state *app.State, window fyne.Window) *PointDialog {
	return &PointDialog{
		state:  state,
		window: window,
	}
}

// Present shows the form for req.
func (d *PointDialog) Present(req editor.Request) {
	content := d.createContent(req)

	d.dlg = dialog.NewCustomWithoutButtons(req.Title(), content, d.window)

	d.cancelButton = widget.NewButton("Cancel", d.cancel)
	d.saveButton = widget.NewButton("Save", d.save)
	d.saveButton.Importance = widget.HighImportance
	d.deleteButton = widget.NewButton("Delete", d.delete)
	d.deleteButton.Importance = widget.DangerImportance

	buttons := []fyne.CanvasObject{d.cancelButton}
	if req.CanDelete() {
		buttons = append(buttons, d.deleteButton)
	}
	buttons = append(buttons, d.saveButton)
	d.dlg.SetButtons(buttons)

	// Any other way of dismissing the dialog discards it.
	d.dlg.SetOnClosed(d.state.CancelEditor)

	d.dlg.Resize(fyne.NewSize(380, 260))
	d.dlg.Show()
	d.window.Canvas().Focus(d.labelEntry)
}

func (d *PointDialog) createContent(req editor.Request) fyne.CanvasObject {
	d.labelEntry = widget.NewEntry()
	d.labelEntry.SetPlaceHolder("Label")
	d.labelEntry.SetText(req.Fields.Label)
	d.labelEntry.OnSubmitted = func(string) { d.save() }

	options := make([]string, 0, len(points.Categories))
	for _, c := range points.Categories {
		options = append(options, c.String())
	}
	d.categoryRadio = widget.NewRadioGroup(options, nil)
	d.categoryRadio.Required = true
	d.categoryRadio.SetSelected(req.Fields.Category.String())

	d.errorLabel = widget.NewLabel("")
	d.errorLabel.Importance = widget.DangerImportance
	d.errorLabel.Hide()

	position := widget.NewLabel(fmt.Sprintf("at (%.0f, %.0f)", req.Pos.X, req.Pos.Y))
	position.Importance = widget.LowImportance

	form := widget.NewForm(
		widget.NewFormItem("Label", d.labelEntry),
		widget.NewFormItem("Category", d.categoryRadio),
	)
	return container.NewVBox(form, d.errorLabel, position)
}

// fields reads the form.
func (d *PointDialog) fields() editor.Fields {
	category, _ := points.ParseCategory(d.categoryRadio.Selected)
	return editor.Fields{Label: d.labelEntry.Text, Category: category}
}

func (d *PointDialog) save() {
	err := d.state.CommitEditor(d.fields())
	if errors.Is(err, editor.ErrEmptyLabel) {
		d.errorLabel.SetText(err.Error())
		d.errorLabel.Show()
		d.window.Canvas().Focus(d.labelEntry)
		return
	}
	if err != nil {
		log.Printf("Point dialog: save failed: %v", err)
	}
	d.dlg.Hide()
}

func (d *PointDialog) delete() {
	if err := d.state.DeleteEditorTarget(); err != nil {
		log.Printf("Point dialog: delete failed: %v", err)
	}
	d.dlg.Hide()
}

func (d *PointDialog) cancel() {
	d.state.CancelEditor()
	d.dlg.Hide()
}

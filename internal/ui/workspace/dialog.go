package workspace

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowDeleteConfirm shows a confirmation dialog before deleting a saved
// request file.
func ShowDeleteConfirm(parent fyne.Window, name string, onConfirm func()) {
	dialog.ShowConfirm("Delete Request",
		"Are you sure you want to delete '"+name+"'? This cannot be undone.",
		func(confirmed bool) {
			if confirmed {
				onConfirm()
			}
		},
		parent,
	)
}

// ShowRenamePrompt shows an entry dialog pre-filled with the current name.
func ShowRenamePrompt(parent fyne.Window, current string, onSubmit func(newName string)) {
	entry := widget.NewEntry()
	entry.SetText(current)

	dialog.ShowForm("Rename Request", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(confirmed bool) {
			if confirmed {
				onSubmit(entry.Text)
			}
		},
		parent,
	)
}

// ShowErrorDialog shows an error message dialog.
func ShowErrorDialog(parent fyne.Window, message string) {
	dialog.ShowError(errors.New(message), parent)
}

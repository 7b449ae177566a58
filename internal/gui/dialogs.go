package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	errorTitle   = "Warning"
	errorMessage = "An unexpected error occurred\n\nPlease try again"
)

// Dialogs are the modal interactions the controller needs. Callbacks run on
// the UI thread.
type Dialogs interface {
	// ShowError shows the one generic failure message
	ShowError()
	// ConfirmExit asks "Quit Program?" and calls onConfirm on Yes
	ConfirmExit(onConfirm func())
	// ChooseDirectory asks for a folder, starting at start when possible. An
	// empty dir with a nil error means the user cancelled.
	ChooseDirectory(start string, callback func(dir string, err error))
}

type fyneDialogs struct {
	window fyne.Window
}

// NewDialogs returns Dialogs backed by fyne's dialog package
func NewDialogs(window fyne.Window) Dialogs {
	return &fyneDialogs{window: window}
}

func (d *fyneDialogs) ShowError() {
	dialog.ShowInformation(errorTitle, errorMessage, d.window)
}

func (d *fyneDialogs) ConfirmExit(onConfirm func()) {
	confirm := dialog.NewConfirm("Exit", "Quit Program?", func(yes bool) {
		if yes {
			onConfirm()
		}
	}, d.window)
	confirm.SetConfirmText("Yes")
	confirm.SetDismissText("No")
	confirm.Show()
}

func (d *fyneDialogs) ChooseDirectory(start string, callback func(dir string, err error)) {
	chooser := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			callback("", err)
			return
		}
		if dir == nil {
			callback("", nil)
			return
		}
		callback(dir.Path(), nil)
	}, d.window)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			chooser.SetLocation(lister)
		}
	}
	chooser.Show()
}

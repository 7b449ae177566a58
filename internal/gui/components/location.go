package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Location shows the full path of the selected tree node
type Location struct {
	container *fyne.Container
	label     *widget.Label
	entry     *widget.Entry
}

func NewLocation() *Location {
	l := &Location{
		label: widget.NewLabel("File Path:"),
		entry: widget.NewEntry(),
	}
	l.entry.SetPlaceHolder("Select a file or folder")
	l.container = container.NewVBox(l.label, l.entry)
	return l
}

func (l *Location) SetPath(path string) {
	l.entry.SetText(path)
}

func (l *Location) Path() string {
	return l.entry.Text
}

func (l *Location) GetContainer() *fyne.Container {
	return l.container
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Navigator is the drive dropdown above the tree
type Navigator struct {
	container *fyne.Container
	selector  *widget.Select

	activatedHandler func(root string)
}

func NewNavigator() *Navigator {
	n := &Navigator{}
	n.selector = widget.NewSelect(nil, n.onSelected)
	n.selector.PlaceHolder = "Select a drive"
	n.container = container.NewStack(n.selector)
	return n
}

// SetRoots replaces the listed drive roots without activating any
func (n *Navigator) SetRoots(roots []string) {
	handler := n.activatedHandler
	n.activatedHandler = nil
	n.selector.SetOptions(roots)
	n.selector.ClearSelected()
	n.activatedHandler = handler
}

func (n *Navigator) Roots() []string {
	return n.selector.Options
}

// Activate selects the root at index as if the user picked it
func (n *Navigator) Activate(index int) {
	n.selector.SetSelectedIndex(index)
}

func (n *Navigator) Selected() string {
	return n.selector.Selected
}

func (n *Navigator) SetActivatedHandler(handler func(root string)) {
	n.activatedHandler = handler
}

func (n *Navigator) GetContainer() *fyne.Container {
	return n.container
}

func (n *Navigator) onSelected(root string) {
	if n.activatedHandler != nil && root != "" {
		n.activatedHandler(root)
	}
}

package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"simple-file-explorer/internal/gui/components"
)

// View handles all UI components and their layout
type View struct {
	window     fyne.Window
	controller *Controller

	// UI components
	navigator     *components.Navigator
	tree          *components.DirectoryTree
	location      *components.Location
	statusBar     *components.StatusBar
	mainContainer *fyne.Container
}

func NewView(window fyne.Window, model components.TreeModel, statusTimeout time.Duration) *View {
	view := &View{
		window: window,
	}

	view.setupComponents(model, statusTimeout)
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
}

func (v *View) setupComponents(model components.TreeModel, statusTimeout time.Duration) {
	v.navigator = components.NewNavigator()
	v.tree = components.NewDirectoryTree(model)
	v.location = components.NewLocation()
	v.statusBar = components.NewStatusBar(statusTimeout)
}

// setupLayout stacks navigator, tree, path and status top to bottom; the tree
// takes the remaining height
func (v *View) setupLayout() {
	bottom := container.NewVBox(
		v.location.GetContainer(),
		widget.NewSeparator(),
		v.statusBar.GetContainer(),
	)

	v.mainContainer = container.NewBorder(
		v.navigator.GetContainer(),
		bottom,
		nil, nil,
		v.tree.Widget(),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.navigator.SetActivatedHandler(v.controller.SwitchDrive)
	v.tree.SetSelectedHandler(v.controller.ShowLocation)
	v.tree.SetSecondaryTapHandler(v.controller.HandleContextMenu)
	v.tree.SetBranchHandlers(v.controller.WatchBranch, v.controller.UnwatchBranch)
}

// Public interface for controller
func (v *View) SetRoots(roots []string) {
	v.navigator.SetRoots(roots)
}

func (v *View) ActivateRoot(index int) {
	v.navigator.Activate(index)
}

func (v *View) SetTreeRoot(root string) {
	v.tree.SetRoot(root)
}

func (v *View) TreeRoot() string {
	return v.tree.Root()
}

func (v *View) SelectPath(path string) {
	v.tree.Select(path)
}

func (v *View) UnselectPath(path string) {
	v.tree.Unselect(path)
}

func (v *View) RefreshTree() {
	v.tree.Refresh()
}

func (v *View) SetLocation(path string) {
	v.location.SetPath(path)
}

func (v *View) Location() string {
	return v.location.Path()
}

func (v *View) SetStatus(status string) {
	v.statusBar.ShowMessage(status)
}

func (v *View) Status() string {
	return v.statusBar.Message()
}

// ShowContextMenu pops the menu up at an absolute canvas position
func (v *View) ShowContextMenu(menu *fyne.Menu, pos fyne.Position) {
	widget.ShowPopUpMenuAtPosition(menu, v.window.Canvas(), pos)
}

// Window management
func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}

package components

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"simple-file-explorer/internal/explorer"
)

// TreeModel supplies the directory structure rendered by DirectoryTree
type TreeModel interface {
	Children(dir string) []string
	IsDir(path string) bool
	Entry(path string) (explorer.Entry, error)
}

// DirectoryTree renders the file system below a drive root. Node IDs are
// absolute paths.
type DirectoryTree struct {
	tree  *widget.Tree
	model TreeModel
	root  string

	selectedHandler     func(path string)
	secondaryTapHandler func(path string, pos fyne.Position)
	branchOpenedHandler func(path string)
	branchClosedHandler func(path string)
}

func NewDirectoryTree(model TreeModel) *DirectoryTree {
	t := &DirectoryTree{model: model}

	t.tree = widget.NewTree(t.childUIDs, t.isBranch, t.createNode, t.updateNode)
	t.tree.OnSelected = func(uid widget.TreeNodeID) {
		if t.selectedHandler != nil {
			t.selectedHandler(uid)
		}
	}
	t.tree.OnBranchOpened = func(uid widget.TreeNodeID) {
		if t.branchOpenedHandler != nil {
			t.branchOpenedHandler(uid)
		}
	}
	t.tree.OnBranchClosed = func(uid widget.TreeNodeID) {
		if t.branchClosedHandler != nil {
			t.branchClosedHandler(uid)
		}
	}

	return t
}

// SetRoot shows the contents of root at the top level
func (t *DirectoryTree) SetRoot(root string) {
	t.root = root
	t.tree.UnselectAll()
	t.tree.CloseAllBranches()
	t.tree.Root = root
	t.tree.Refresh()
	t.tree.ScrollToTop()
}

func (t *DirectoryTree) Root() string {
	return t.root
}

// Select marks path as selected and fires the selection handler
func (t *DirectoryTree) Select(path string) {
	t.tree.Select(path)
}

func (t *DirectoryTree) Unselect(path string) {
	t.tree.Unselect(path)
}

// Refresh re-reads every visible directory
func (t *DirectoryTree) Refresh() {
	t.tree.Refresh()
}

func (t *DirectoryTree) SetSelectedHandler(handler func(path string)) {
	t.selectedHandler = handler
}

func (t *DirectoryTree) SetSecondaryTapHandler(handler func(path string, pos fyne.Position)) {
	t.secondaryTapHandler = handler
}

func (t *DirectoryTree) SetBranchHandlers(opened, closed func(path string)) {
	t.branchOpenedHandler = opened
	t.branchClosedHandler = closed
}

func (t *DirectoryTree) Widget() *widget.Tree {
	return t.tree
}

func (t *DirectoryTree) childUIDs(uid widget.TreeNodeID) []widget.TreeNodeID {
	if uid == "" {
		return nil
	}
	return t.model.Children(uid)
}

func (t *DirectoryTree) isBranch(uid widget.TreeNodeID) bool {
	return uid == t.root || t.model.IsDir(uid)
}

func (t *DirectoryTree) createNode(branch bool) fyne.CanvasObject {
	return newTreeNode(t.onNodeSecondaryTap)
}

func (t *DirectoryTree) updateNode(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	node, ok := obj.(*treeNode)
	if !ok {
		return
	}

	entry, err := t.model.Entry(uid)
	if err != nil {
		// vanished between listing and drawing; the next refresh drops it
		entry = explorer.Entry{Path: uid, Name: uid, IsDir: branch}
	}
	node.bind(entry)
}

func (t *DirectoryTree) onNodeSecondaryTap(path string, pos fyne.Position) {
	t.tree.Select(path)
	if t.secondaryTapHandler != nil {
		t.secondaryTapHandler(path, pos)
	}
}

// treeNode is one row: icon, name and a size/age column. It receives
// right-clicks; left-clicks fall through to the tree row for selection.
type treeNode struct {
	widget.BaseWidget

	icon   *widget.Icon
	name   *widget.Label
	detail *widget.Label

	path        string
	onSecondary func(path string, pos fyne.Position)
}

func newTreeNode(onSecondary func(path string, pos fyne.Position)) *treeNode {
	n := &treeNode{
		icon:        widget.NewIcon(theme.FileIcon()),
		name:        widget.NewLabel(""),
		detail:      widget.NewLabel(""),
		onSecondary: onSecondary,
	}
	n.name.Truncation = fyne.TextTruncateEllipsis
	n.detail.Importance = widget.LowImportance
	n.ExtendBaseWidget(n)
	return n
}

func (n *treeNode) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, n.icon, n.detail, n.name))
}

func (n *treeNode) TappedSecondary(ev *fyne.PointEvent) {
	if n.onSecondary != nil && n.path != "" {
		n.onSecondary(n.path, ev.AbsolutePosition)
	}
}

func (n *treeNode) bind(entry explorer.Entry) {
	n.path = entry.Path
	if entry.IsDir {
		n.icon.SetResource(theme.FolderIcon())
	} else {
		n.icon.SetResource(theme.FileIcon())
	}
	n.name.SetText(entry.Name)
	n.detail.SetText(FormatDetail(entry))
}

// FormatDetail renders the size (files only) and age of an entry
func FormatDetail(entry explorer.Entry) string {
	if entry.Modified.IsZero() {
		return ""
	}
	age := humanize.Time(entry.Modified)
	if entry.IsDir {
		return age
	}
	return fmt.Sprintf("%s · %s", humanize.Bytes(uint64(entry.Size)), age)
}

package components

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"simple-file-explorer/internal/explorer"
)

type stubModel struct {
	children map[string][]string
	dirs     map[string]bool
}

func (m *stubModel) Children(dir string) []string { return m.children[dir] }
func (m *stubModel) IsDir(path string) bool       { return m.dirs[path] }

func (m *stubModel) Entry(path string) (explorer.Entry, error) {
	if _, ok := m.dirs[path]; !ok {
		return explorer.Entry{}, errors.New("gone")
	}
	return explorer.Entry{Path: path, Name: filepath.Base(path), IsDir: m.dirs[path]}, nil
}

func newStubModel() *stubModel {
	return &stubModel{
		children: map[string][]string{
			"/data":        {"/data/photos", "/data/todo.txt"},
			"/data/photos": {"/data/photos/cat.jpg"},
		},
		dirs: map[string]bool{
			"/data":                true,
			"/data/photos":         true,
			"/data/todo.txt":       false,
			"/data/photos/cat.jpg": false,
		},
	}
}

func TestDirectoryTreeFollowsModel(t *testing.T) {
	test.NewApp()
	tree := NewDirectoryTree(newStubModel())
	tree.SetRoot("/data")

	w := tree.Widget()
	assert.Equal(t, "/data", tree.Root())
	assert.Equal(t, []string{"/data/photos", "/data/todo.txt"}, w.ChildUIDs("/data"))
	assert.True(t, w.IsBranch("/data/photos"))
	assert.False(t, w.IsBranch("/data/todo.txt"))
	assert.Empty(t, w.ChildUIDs(""))
}

func TestDirectoryTreeSelectionHandler(t *testing.T) {
	test.NewApp()
	tree := NewDirectoryTree(newStubModel())
	tree.SetRoot("/data")

	var selected string
	tree.SetSelectedHandler(func(path string) { selected = path })
	tree.Select("/data/todo.txt")

	assert.Equal(t, "/data/todo.txt", selected)
}

func TestSecondaryTapSelectsRow(t *testing.T) {
	test.NewApp()
	tree := NewDirectoryTree(newStubModel())
	tree.SetRoot("/data")

	var selected, tapped string
	tree.SetSelectedHandler(func(path string) { selected = path })
	tree.SetSecondaryTapHandler(func(path string, pos fyne.Position) { tapped = path })

	node := tree.createNode(false).(*treeNode)
	tree.updateNode("/data/todo.txt", false, node)
	node.TappedSecondary(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(5, 5)})

	assert.Equal(t, "/data/todo.txt", selected)
	assert.Equal(t, "/data/todo.txt", tapped)
	assert.Equal(t, "todo.txt", node.name.Text)
}

// renderedNodes returns the row widgets currently drawn below obj
func renderedNodes(obj fyne.CanvasObject) []*treeNode {
	var nodes []*treeNode
	if n, ok := obj.(*treeNode); ok {
		nodes = append(nodes, n)
	}

	switch o := obj.(type) {
	case *fyne.Container:
		for _, child := range o.Objects {
			nodes = append(nodes, renderedNodes(child)...)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			nodes = append(nodes, renderedNodes(child)...)
		}
	}
	return nodes
}

func TestRightClickOnRenderedRow(t *testing.T) {
	test.NewApp()
	tree := NewDirectoryTree(newStubModel())
	tree.SetRoot("/data")

	w := test.NewWindow(tree.Widget())
	defer w.Close()
	w.Resize(fyne.NewSize(400, 300))

	var selected, tapped string
	tree.SetSelectedHandler(func(path string) { selected = path })
	tree.SetSecondaryTapHandler(func(path string, pos fyne.Position) { tapped = path })

	var row *treeNode
	for _, n := range renderedNodes(tree.Widget()) {
		if n.path == "/data/todo.txt" {
			row = n
		}
	}
	require.NotNil(t, row, "todo.txt row not rendered")

	test.TapSecondary(row)

	assert.Equal(t, "/data/todo.txt", tapped)
	assert.Equal(t, "/data/todo.txt", selected)
}

func TestUpdateNodeToleratesVanishedEntries(t *testing.T) {
	test.NewApp()
	tree := NewDirectoryTree(newStubModel())

	node := tree.createNode(true).(*treeNode)
	tree.updateNode("/data/deleted", true, node)

	assert.Equal(t, "/data/deleted", node.path)
	assert.Empty(t, node.detail.Text)
}

func TestFormatDetail(t *testing.T) {
	assert.Empty(t, FormatDetail(explorer.Entry{Name: "x"}))

	old := time.Now().Add(-3 * time.Hour)
	assert.Equal(t, "3 hours ago", FormatDetail(explorer.Entry{IsDir: true, Modified: old}))
	assert.Equal(t, "1.5 kB · 3 hours ago", FormatDetail(explorer.Entry{Size: 1500, Modified: old}))
}

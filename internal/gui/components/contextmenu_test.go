package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextMenuLayout(t *testing.T) {
	menu := NewContextMenu(func(Action) {})

	var labels []string
	for _, item := range menu.Items {
		if item.IsSeparator {
			labels = append(labels, "---")
			continue
		}
		labels = append(labels, item.Label)
	}

	assert.Equal(t, []string{"Open File", "---", "Copy", "Paste", "Delete", "---", "Exit Explorer"}, labels)
}

func TestContextMenuDispatchesAction(t *testing.T) {
	var got []Action
	menu := NewContextMenu(func(a Action) { got = append(got, a) })

	for _, item := range menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}

	require.Len(t, got, 5)
	assert.Equal(t, []Action{ActionOpen, ActionCopy, ActionPaste, ActionDelete, ActionExit}, got)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "paste", ActionPaste.String())
	assert.Equal(t, "unknown", Action(42).String())
	assert.Empty(t, Action(42).Label())
}

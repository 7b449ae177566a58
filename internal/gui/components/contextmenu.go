package components

import "fyne.io/fyne/v2"

// Action is an entry of the tree's right-click menu
type Action int

const (
	ActionOpen Action = iota
	ActionCopy
	ActionPaste
	ActionDelete
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionCopy:
		return "copy"
	case ActionPaste:
		return "paste"
	case ActionDelete:
		return "delete"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Label is the menu text for the action
func (a Action) Label() string {
	switch a {
	case ActionOpen:
		return "Open File"
	case ActionCopy:
		return "Copy"
	case ActionPaste:
		return "Paste"
	case ActionDelete:
		return "Delete"
	case ActionExit:
		return "Exit Explorer"
	default:
		return ""
	}
}

// NewContextMenu builds Open | Copy, Paste, Delete | Exit with separators
// between the groups. dispatch receives the chosen action.
func NewContextMenu(dispatch func(Action)) *fyne.Menu {
	item := func(a Action) *fyne.MenuItem {
		return fyne.NewMenuItem(a.Label(), func() { dispatch(a) })
	}

	return fyne.NewMenu("",
		item(ActionOpen),
		fyne.NewMenuItemSeparator(),
		item(ActionCopy),
		item(ActionPaste),
		item(ActionDelete),
		fyne.NewMenuItemSeparator(),
		item(ActionExit),
	)
}

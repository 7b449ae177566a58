package gui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"

	"simple-file-explorer/internal/gui/components"
	"simple-file-explorer/internal/logger"
)

// Model is what the window reads from the file system
type Model interface {
	components.TreeModel
	Describer
}

// Manager owns the explorer window's view and controller
type Manager struct {
	view       *View
	controller *Controller
	logger     logger.Logger
}

// NewManager builds the view and controller for window. deps.Describer
// defaults to model and deps.Dialogs to fyne dialogs on window.
func NewManager(window fyne.Window, model Model, deps Dependencies, statusTimeout time.Duration) *Manager {
	if deps.Describer == nil {
		deps.Describer = model
	}
	if deps.Dialogs == nil {
		deps.Dialogs = NewDialogs(window)
	}

	view := NewView(window, model, statusTimeout)
	controller := NewController(deps)

	controller.SetView(view)
	view.SetController(controller)

	manager := &Manager{
		view:       view,
		controller: controller,
		logger:     controller.logger,
	}

	manager.logger.Info("GUIManager", "initialized", map[string]interface{}{
		"status_timeout": statusTimeout.String(),
	})

	return manager
}

func (m *Manager) Controller() *Controller {
	return m.controller
}

func (m *Manager) View() *View {
	return m.view
}

// Start loads the drive roots and shows the window
func (m *Manager) Start(ctx context.Context) {
	m.view.Show()
	m.controller.LoadDrives(ctx)
	m.logger.Info("GUIManager", "GUI displayed", nil)
}

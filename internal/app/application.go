package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"simple-file-explorer/internal/config"
	"simple-file-explorer/internal/explorer"
	"simple-file-explorer/internal/gui"
	"simple-file-explorer/internal/logger"
	"simple-file-explorer/internal/shutdown"
)

const (
	AppName    = "Simple File Explorer"
	AppID      = "com.example.simplefileexplorer"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	watcher    *explorer.Watcher
	shutdown   *shutdown.Manager
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication wires the explorer from cfg using the default fyne driver
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return NewApplicationWith(app.NewWithID(AppID), cfg, log)
}

// NewApplicationWith wires the explorer onto an existing fyne app, which lets
// tests pass a test app.
func NewApplicationWith(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"show_hidden":   cfg.ShowHidden,
		"watch":         cfg.Watch,
	})

	model, err := explorer.NewModel(explorer.ModelOptions{
		ShowHidden:  cfg.ShowHidden,
		NameFilters: cfg.NameFilters,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("invalid name filters: %w", err)
	}

	shutdownManager := shutdown.NewManager(log)

	guiManager := gui.NewManager(window, model, gui.Dependencies{
		Operations: explorer.NewOperations(explorer.BrowserOpener{}, log),
		Drives:     explorer.NewDriveLister(cfg.Roots),
		Clipboard:  window.Clipboard(),
		Logger:     log,
		Quit:       fyneApp.Quit,
	}, cfg.StatusTimeout)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		shutdown:   shutdownManager,
		logger:     log,
	}

	if cfg.Watch {
		controller := guiManager.Controller()
		watcher, err := explorer.NewWatcher(controller.HandleDirectoryChanged, log)
		if err != nil {
			// live refresh is optional
			log.Warning("Application", "directory watching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			controller.SetWatcher(watcher)
			shutdownManager.Register("watcher", watcher)
			application.watcher = watcher
		}
	}

	application.lifecycle = NewLifecycle(shutdownManager, log)
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.requestClose)
}

// requestClose runs when the window's close button is pressed
func (a *Application) requestClose() {
	a.logger.Info("Application", "close requested", nil)
	a.guiManager.Controller().RequestExit()
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.guiManager.Start(a.shutdown.Context())
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

package gui

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"fyne.io/fyne/v2"

	"simple-file-explorer/internal/explorer"
	"simple-file-explorer/internal/gui/components"
	"simple-file-explorer/internal/logger"
)

const (
	StatusReady   = "Explorer Ready"
	StatusOpened  = "File or folder opened"
	StatusCopied  = "File or folder copied"
	StatusPlaced  = "File or folder placed"
	StatusDeleted = "File deleted"
)

// FileOperations are the OS pass-throughs behind the context menu
type FileOperations interface {
	Open(path string) error
	Paste(source, destDir string) (string, error)
	Delete(path string) error
}

// DriveSource lists the roots offered by the navigator
type DriveSource interface {
	ListRoots(ctx context.Context) ([]explorer.Drive, error)
	Usage(ctx context.Context, root string) (explorer.DriveUsage, error)
}

// Describer returns the details shown when a path is selected
type Describer interface {
	Describe(path string) (explorer.Entry, error)
}

// DirectoryWatcher follows the directories visible in the tree
type DirectoryWatcher interface {
	Watch(dir string) error
	Unwatch(dir string)
	Reset(root string) error
}

// Clipboard is the subset of fyne.Clipboard the explorer uses
type Clipboard interface {
	Content() string
	SetContent(content string)
}

// Dependencies groups everything the controller delegates to
type Dependencies struct {
	Operations FileOperations
	Drives     DriveSource
	Describer  Describer
	Clipboard  Clipboard
	Dialogs    Dialogs
	Logger     logger.Logger
	// Quit ends the application once exit is confirmed
	Quit func()
}

// Controller coordinates the view with the file operations
type Controller struct {
	view    *View
	ops     FileOperations
	drives  DriveSource
	details Describer
	clip    Clipboard
	dialogs Dialogs
	logger  logger.Logger
	quit    func()
	watcher DirectoryWatcher

	// refreshTree redraws the tree from disk; set by SetView
	refreshTree func()

	ctx context.Context
}

func NewController(deps Dependencies) *Controller {
	log := deps.Logger
	if log == nil {
		log = logger.NoOp{}
	}
	quit := deps.Quit
	if quit == nil {
		quit = func() {}
	}

	return &Controller{
		ops:     deps.Operations,
		drives:  deps.Drives,
		details: deps.Describer,
		clip:    deps.Clipboard,
		dialogs: deps.Dialogs,
		logger:  log,
		quit:    quit,
		ctx:     context.Background(),
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view
	c.refreshTree = view.RefreshTree
}

// SetWatcher enables live refresh. Without one the tree only refreshes after
// the explorer's own operations.
func (c *Controller) SetWatcher(w DirectoryWatcher) {
	c.watcher = w
}

// LoadDrives fills the navigator and roots the tree at the first drive
func (c *Controller) LoadDrives(ctx context.Context) {
	c.ctx = ctx

	drives, err := c.drives.ListRoots(ctx)
	if err != nil {
		// the list still carries a fallback root
		c.logger.Warning("Controller", "drive enumeration incomplete", map[string]interface{}{
			"error": err.Error(),
		})
	}

	roots := make([]string, 0, len(drives))
	for _, d := range drives {
		roots = append(roots, d.Root)
	}

	c.view.SetRoots(roots)
	if len(roots) > 0 {
		c.view.ActivateRoot(0)
	}
	c.view.SetStatus(StatusReady)

	c.logger.Info("Controller", "drives loaded", map[string]interface{}{
		"count": len(roots),
	})
}

// SwitchDrive re-roots the tree at root
func (c *Controller) SwitchDrive(root string) {
	c.view.SetTreeRoot(root)
	c.view.SetLocation(root)

	if c.watcher != nil {
		if err := c.watcher.Reset(root); err != nil {
			c.logger.Warning("Controller", "cannot watch drive root", map[string]interface{}{
				"root":  root,
				"error": err.Error(),
			})
		}
	}

	usage, err := c.drives.Usage(c.ctx, root)
	if err != nil {
		c.view.SetStatus(root)
		return
	}
	c.view.SetStatus(fmt.Sprintf("%s: %s free of %s",
		root, humanize.Bytes(usage.Free), humanize.Bytes(usage.Total)))
}

// ShowLocation mirrors the selected path into the path entry
func (c *Controller) ShowLocation(path string) {
	c.view.SetLocation(path)

	if c.details == nil {
		return
	}
	entry, err := c.details.Describe(path)
	if err != nil || entry.IsDir {
		return
	}
	c.view.SetStatus(fmt.Sprintf("%s · %s", entry.MIME, humanize.Bytes(uint64(entry.Size))))
}

// HandleContextMenu shows the action menu for path at pos
func (c *Controller) HandleContextMenu(path string, pos fyne.Position) {
	menu := components.NewContextMenu(func(action components.Action) {
		c.Dispatch(action, path)
	})
	c.view.ShowContextMenu(menu, pos)
}

// Dispatch runs a context menu action against path
func (c *Controller) Dispatch(action components.Action, path string) {
	c.logger.Debug("Controller", "dispatching action", map[string]interface{}{
		"action": action.String(),
		"path":   path,
	})

	switch action {
	case components.ActionOpen:
		c.open(path)
	case components.ActionCopy:
		c.copy(path)
	case components.ActionPaste:
		c.paste()
	case components.ActionDelete:
		c.delete(path)
	case components.ActionExit:
		c.RequestExit()
	}
}

func (c *Controller) open(path string) {
	if err := c.ops.Open(path); err != nil {
		c.fail(components.ActionOpen, err)
		return
	}
	c.view.SetStatus(StatusOpened)
}

func (c *Controller) copy(path string) {
	url, err := explorer.EncodeFileURL(path)
	if err != nil {
		c.fail(components.ActionCopy, err)
		return
	}
	c.clip.SetContent(url)
	c.view.SetStatus(StatusCopied)
}

func (c *Controller) paste() {
	source, err := explorer.DecodeFileURL(c.clip.Content())
	if err != nil {
		c.fail(components.ActionPaste, err)
		return
	}

	c.dialogs.ChooseDirectory(c.view.TreeRoot(), func(dir string, err error) {
		if err != nil {
			c.fail(components.ActionPaste, err)
			return
		}

		if _, err := c.ops.Paste(source, dir); err != nil {
			c.fail(components.ActionPaste, err)
			return
		}
		c.refreshTree()
		c.view.SetStatus(StatusPlaced)
	})
}

func (c *Controller) delete(path string) {
	if err := c.ops.Delete(path); err != nil {
		c.fail(components.ActionDelete, err)
		return
	}

	c.view.UnselectPath(path)
	c.view.SetLocation("")
	c.refreshTree()
	c.view.SetStatus(StatusDeleted)
}

// RequestExit asks for confirmation before quitting
func (c *Controller) RequestExit() {
	c.dialogs.ConfirmExit(func() {
		c.logger.Info("Controller", "exit confirmed", nil)
		c.quit()
	})
}

// WatchBranch starts following a directory the user expanded
func (c *Controller) WatchBranch(dir string) {
	if c.watcher == nil {
		return
	}
	if err := c.watcher.Watch(dir); err != nil {
		c.logger.Debug("Controller", "cannot watch directory", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
	}
}

// UnwatchBranch stops following a collapsed directory
func (c *Controller) UnwatchBranch(dir string) {
	if c.watcher != nil {
		c.watcher.Unwatch(dir)
	}
}

// HandleDirectoryChanged is called from the watcher goroutine
func (c *Controller) HandleDirectoryChanged(dir string) {
	fyne.Do(c.refreshTree)
}

// fail logs err and shows the generic warning; nothing is retried
func (c *Controller) fail(action components.Action, err error) {
	c.logger.Error("Controller", err, map[string]interface{}{
		"action": action.String(),
	})
	c.dialogs.ShowError()
}

package explorer

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"simple-file-explorer/internal/logger"
)

const (
	changeOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Write

	// coalesceDelay bounds how often a busy directory is reported
	coalesceDelay = 250 * time.Millisecond
)

// Watcher reports changes inside the directories the tree currently shows.
// Bursts of events are coalesced: each changed directory is reported once per
// delay window. onChange runs on a timer goroutine.
type Watcher struct {
	fs       *fsnotify.Watcher
	onChange func(dir string)
	logger   logger.Logger
	delay    time.Duration

	mu      sync.Mutex
	watched map[string]struct{}
	pending map[string]struct{}
	timer   *time.Timer
	closed  bool
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(onChange func(dir string), log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fsw,
		onChange: onChange,
		logger:   log,
		delay:    coalesceDelay,
		watched:  make(map[string]struct{}),
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[dir]; ok {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = struct{}{}
	return nil
}

func (w *Watcher) Unwatch(dir string) {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[dir]; !ok {
		return
	}
	delete(w.watched, dir)
	_ = w.fs.Remove(dir)
}

// Reset drops every watch and watches root alone
func (w *Watcher) Reset(root string) error {
	w.mu.Lock()
	for dir := range w.watched {
		_ = w.fs.Remove(dir)
	}
	w.watched = make(map[string]struct{})
	w.mu.Unlock()

	return w.Watch(root)
}

// Watched returns the number of directories under watch
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

func (w *Watcher) Shutdown() {
	w.once.Do(func() {
		w.fs.Close()
		<-w.done

		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(changeOps) {
				continue
			}
			if dir := w.affected(ev.Name); dir != "" {
				w.logger.Debug("Watcher", "directory changed", map[string]interface{}{
					"dir":   dir,
					"event": ev.Op.String(),
				})
				w.schedule(dir)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warning("Watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// affected maps an event path to the watched directory listing it
func (w *Watcher) affected(name string) string {
	parent := filepath.Dir(filepath.Clean(name))

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[parent]; ok {
		return parent
	}
	return ""
}

// schedule queues dir and arms the flush timer unless it is already running
func (w *Watcher) schedule(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[dir] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.delay, w.flush)
	}
}

func (w *Watcher) flush() {
	w.mu.Lock()
	dirs := make([]string, 0, len(w.pending))
	for dir := range w.pending {
		dirs = append(dirs, dir)
	}
	w.pending = make(map[string]struct{})
	w.timer = nil
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}
	for _, dir := range dirs {
		w.onChange(dir)
	}
}

package components

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows short-lived messages at the bottom of the window
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	timeout     time.Duration

	mu         sync.Mutex
	generation uint64
}

// NewStatusBar creates a status bar whose messages clear after timeout.
// A zero timeout keeps messages until replaced.
func NewStatusBar(timeout time.Duration) *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel(""),
		timeout:     timeout,
	}
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.container = container.NewStack(sb.statusLabel)
	return sb
}

// ShowMessage displays msg for the configured timeout
func (sb *StatusBar) ShowMessage(msg string) {
	sb.ShowMessageFor(msg, sb.timeout)
}

// ShowMessageFor displays msg and clears it after d unless another message
// replaced it first. Must be called on the UI thread.
func (sb *StatusBar) ShowMessageFor(msg string, d time.Duration) {
	sb.mu.Lock()
	sb.generation++
	gen := sb.generation
	sb.mu.Unlock()

	sb.statusLabel.SetText(msg)

	if d <= 0 {
		return
	}
	time.AfterFunc(d, func() {
		fyne.Do(func() {
			sb.clearIfCurrent(gen)
		})
	})
}

func (sb *StatusBar) clearIfCurrent(gen uint64) {
	sb.mu.Lock()
	current := sb.generation == gen
	sb.mu.Unlock()

	if current {
		sb.statusLabel.SetText("")
	}
}

// Message returns the text currently shown
func (sb *StatusBar) Message() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

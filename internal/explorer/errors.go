package explorer

import "errors"

var (
	ErrSourceMissing  = errors.New("source does not exist")
	ErrSameFile       = errors.New("source and destination are the same")
	ErrNoDestination  = errors.New("no destination directory chosen")
	ErrNotDirectory   = errors.New("destination is not a directory")
	ErrClipboardEmpty = errors.New("clipboard is empty")
	ErrNotFileURL     = errors.New("clipboard does not hold a file URL")
	ErrNoLauncher     = errors.New("no desktop launcher available")
)

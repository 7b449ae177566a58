package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"

	"simple-file-explorer/internal/logger"
)

// Entry describes one node of the tree
type Entry struct {
	Path     string
	Name     string
	Size     int64
	Modified time.Time
	IsDir    bool
	MIME     string
}

// ModelOptions controls what the tree lists
type ModelOptions struct {
	ShowHidden  bool
	NameFilters []string
}

// Model lists directories on demand for the tree view. Node IDs are
// absolute paths. Nothing is cached: every call reads the disk.
type Model struct {
	showHidden bool
	filters    []string
	logger     logger.Logger
}

func NewModel(opts ModelOptions, log logger.Logger) (*Model, error) {
	filters := make([]string, 0, len(opts.NameFilters))
	for _, pattern := range opts.NameFilters {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid name filter %q", pattern)
		}
		filters = append(filters, pattern)
	}

	return &Model{
		showHidden: opts.ShowHidden,
		filters:    filters,
		logger:     log,
	}, nil
}

// Children lists dir with directories first, each group sorted by name
// ignoring case. An unreadable directory has no children.
func (m *Model) Children(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.logger.Debug("Model", "directory unreadable", map[string]interface{}{
			"path":  dir,
			"error": err.Error(),
		})
		return nil
	}

	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		if !m.showHidden && isHidden(name) {
			continue
		}

		full := filepath.Join(dir, name)
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			isDir = m.IsDir(full)
		}

		if isDir {
			dirs = append(dirs, full)
			continue
		}
		if m.matchesFilters(name) {
			files = append(files, full)
		}
	}

	sortByName(dirs)
	sortByName(files)
	return append(dirs, files...)
}

// IsDir follows symlinks; missing paths are not directories
func (m *Model) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Entry stats path without touching its contents
func (m *Model) Entry(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Path:     path,
		Name:     displayName(path),
		Size:     info.Size(),
		Modified: info.ModTime(),
		IsDir:    info.IsDir(),
	}, nil
}

// Describe is Entry plus the sniffed MIME type of regular files
func (m *Model) Describe(path string) (Entry, error) {
	entry, err := m.Entry(path)
	if err != nil || entry.IsDir {
		return entry, err
	}

	if mtype, err := mimetype.DetectFile(path); err == nil {
		entry.MIME = mtype.String()
	}
	return entry, nil
}

func (m *Model) matchesFilters(name string) bool {
	if len(m.filters) == 0 {
		return true
	}
	for _, pattern := range m.filters {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func sortByName(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		a, b := strings.ToLower(filepath.Base(paths[i])), strings.ToLower(filepath.Base(paths[j]))
		if a == b {
			return paths[i] < paths[j]
		}
		return a < b
	})
}

// displayName is the base name, or the whole path for a drive root
func displayName(path string) string {
	base := filepath.Base(path)
	if base == string(filepath.Separator) || base == "." || strings.HasSuffix(base, ":") || base == "" {
		return path
	}
	return base
}

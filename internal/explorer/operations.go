package explorer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/pkg/browser"

	"simple-file-explorer/internal/logger"
)

// Opener hands a path to the operating system's default handler
type Opener interface {
	Open(path string) error
}

// BrowserOpener opens paths with the platform launcher (xdg-open, open, rundll32).
// On Unix desktops xdg-open must exist; otherwise the browser package would
// fall back to a web browser and block until it exits.
type BrowserOpener struct {
	lookPath func(file string) (string, error)
}

func (o BrowserOpener) Open(path string) error {
	if usesXDGOpen() {
		lookPath := o.lookPath
		if lookPath == nil {
			lookPath = exec.LookPath
		}
		if _, err := lookPath("xdg-open"); err != nil {
			return fmt.Errorf("%w: xdg-open: %v", ErrNoLauncher, err)
		}
	}
	return browser.OpenFile(path)
}

func usesXDGOpen() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return true
	}
	return false
}

// Operations are the synchronous OS pass-throughs behind the context menu.
// A failure midway leaves whatever was already written in place.
type Operations struct {
	opener Opener
	logger logger.Logger
}

func NewOperations(opener Opener, log logger.Logger) *Operations {
	return &Operations{opener: opener, logger: log}
}

// Open resolves symlinks before handing the path over.
func (o *Operations) Open(path string) error {
	real, err := realPath(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := o.opener.Open(real); err != nil {
		return fmt.Errorf("open %s: %w", real, err)
	}

	o.logger.Info("Operations", "opened", map[string]interface{}{"path": real})
	return nil
}

// Paste copies source into destDir under its base name and returns the new
// path. Files keep their permission bits and modification time; directories
// are copied recursively. An existing file at the destination is overwritten.
func (o *Operations) Paste(source, destDir string) (string, error) {
	if destDir == "" {
		return "", ErrNoDestination
	}

	srcInfo, err := os.Stat(source)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrSourceMissing, source)
	}
	if err != nil {
		return "", err
	}

	destInfo, err := os.Stat(destDir)
	if err != nil {
		return "", fmt.Errorf("destination %s: %w", destDir, err)
	}
	if !destInfo.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, destDir)
	}

	target := filepath.Join(destDir, filepath.Base(source))
	if targetInfo, err := os.Stat(target); err == nil && os.SameFile(srcInfo, targetInfo) {
		return "", fmt.Errorf("%w: %s", ErrSameFile, source)
	}

	if srcInfo.IsDir() {
		inside, err := isWithin(destDir, source)
		if err != nil {
			return "", err
		}
		if inside {
			return "", fmt.Errorf("%w: %s contains %s", ErrSameFile, source, destDir)
		}
		err = copyTree(source, target)
	} else {
		err = copyFile(source, target, srcInfo)
	}
	if err != nil {
		return "", fmt.Errorf("paste %s into %s: %w", source, destDir, err)
	}

	o.logger.Info("Operations", "pasted", map[string]interface{}{
		"source": source,
		"target": target,
		"dir":    srcInfo.IsDir(),
	})
	return target, nil
}

// Delete removes a file or an empty directory.
func (o *Operations) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	o.logger.Info("Operations", "deleted", map[string]interface{}{"path": path})
	return nil
}

func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// copyTree walks src concurrently; every callback creates the parents it
// needs, so callback order does not matter. Directories are created owner-only
// and receive their source mode and mtime once the walk is done.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0o700); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		dirs []copiedDir
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			info, err := d.Info()
			if err != nil {
				return err
			}
			mu.Lock()
			dirs = append(dirs, copiedDir{target: target, info: info})
			mu.Unlock()
			return os.MkdirAll(target, 0o700)
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(p)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
				return err
			}
			os.Remove(target)
			return os.Symlink(link, target)
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
				return err
			}
			return copyFile(p, target, info)
		default:
			// sockets, devices and pipes are skipped
			return nil
		}
	})
	if err != nil {
		return err
	}
	return restoreDirs(dirs)
}

type copiedDir struct {
	target string
	info   fs.FileInfo
}

// restoreDirs applies mode and mtime deepest first, so finishing a child
// does not touch a parent that was already stamped.
func restoreDirs(dirs []copiedDir) error {
	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i].target, string(filepath.Separator)) >
			strings.Count(dirs[j].target, string(filepath.Separator))
	})

	for _, d := range dirs {
		if err := os.Chmod(d.target, d.info.Mode().Perm()); err != nil {
			return err
		}
		if err := os.Chtimes(d.target, d.info.ModTime(), d.info.ModTime()); err != nil {
			return err
		}
	}
	return nil
}

// isWithin reports whether path is dir itself or lies below it
func isWithin(path, dir string) (bool, error) {
	p, err := realPath(path)
	if err != nil {
		return false, err
	}
	d, err := realPath(dir)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(d, p)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

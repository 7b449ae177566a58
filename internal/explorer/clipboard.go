package explorer

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// EncodeFileURL builds the percent-encoded file:// URL placed on the
// clipboard by Copy. The real path is used when it can be resolved.
func EncodeFileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	slashed := filepath.ToSlash(abs)
	if !strings.HasPrefix(slashed, "/") {
		// C:/dir becomes /C:/dir
		slashed = "/" + slashed
	}
	return (&url.URL{Scheme: "file", Path: slashed}).String(), nil
}

// DecodeFileURL extracts the local path from clipboard text. Only the first
// line counts, matching text/uri-list payloads from other file managers.
// Percent-escapes are decoded.
func DecodeFileURL(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrClipboardEmpty
	}
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}

	u, err := url.Parse(text)
	if err != nil || !strings.EqualFold(u.Scheme, "file") || u.Path == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFileURL, text)
	}
	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", fmt.Errorf("%w: remote host %q", ErrNotFileURL, u.Host)
	}

	path := u.Path
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		// /C:/dir on Windows
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

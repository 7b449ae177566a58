package explorer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFileURL(t *testing.T) {
	file := filepath.Join(t.TempDir(), "budget-2024.xlsx")
	writeFile(t, file, "cells")

	url, err := EncodeFileURL(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"), url)

	back, err := DecodeFileURL(url)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(file)
	require.NoError(t, err)
	assert.Equal(t, want, back)
}

func TestDecodeFileURL(t *testing.T) {
	t.Run("uri list keeps first entry", func(t *testing.T) {
		path, err := DecodeFileURL("file:///tmp/a.txt\r\nfile:///tmp/b.txt\r\n")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/tmp/a.txt"), path)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DecodeFileURL("  \n")
		assert.ErrorIs(t, err, ErrClipboardEmpty)
	})

	t.Run("plain text", func(t *testing.T) {
		_, err := DecodeFileURL("just some notes")
		assert.ErrorIs(t, err, ErrNotFileURL)
	})

	t.Run("web url", func(t *testing.T) {
		_, err := DecodeFileURL("https://example.com/file.txt")
		assert.ErrorIs(t, err, ErrNotFileURL)
	})

	t.Run("percent escapes from other file managers", func(t *testing.T) {
		path, err := DecodeFileURL("file:///tmp/a%20b.txt")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/tmp/a b.txt"), path)

		path, err = DecodeFileURL("file:///tmp/r%C3%A9sum%C3%A9.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/tmp/résumé.pdf"), path)
	})

	t.Run("localhost", func(t *testing.T) {
		path, err := DecodeFileURL("file://localhost/srv/share/plan.odt")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/srv/share/plan.odt"), path)
	})

	t.Run("remote host", func(t *testing.T) {
		_, err := DecodeFileURL("file://fileserver/share/plan.odt")
		assert.ErrorIs(t, err, ErrNotFileURL)
	})
}

func TestEncodeFileURL_EscapesSpecialNames(t *testing.T) {
	tests := []struct {
		name    string
		escaped string
	}{
		{"my report.txt", "my%20report.txt"},
		{"notes#1.txt", "notes%231.txt"},
		{"100%.txt", "100%25.txt"},
		{"résumé.pdf", "r%C3%A9sum%C3%A9.pdf"},
		{"what?.md", "what%3F.md"},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(dir, tt.name)
			writeFile(t, file, "x")

			url, err := EncodeFileURL(file)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(url, "/"+tt.escaped), url)
			assert.NotContains(t, url, " ")

			back, err := DecodeFileURL(url)
			require.NoError(t, err)
			want, err := filepath.EvalSymlinks(file)
			require.NoError(t, err)
			assert.Equal(t, want, back)
		})
	}
}

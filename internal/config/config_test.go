package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Empty(t, cfg.Roots)
	assert.False(t, cfg.ShowHidden)
	assert.Equal(t, 3*time.Second, cfg.StatusTimeout)
	assert.Equal(t, float32(1000), cfg.WindowWidth)
	assert.Equal(t, float32(600), cfg.WindowHeight)
	assert.True(t, cfg.Watch)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EXPLORER_LOG_LEVEL", "debug")
	t.Setenv("EXPLORER_ROOTS", "/srv,/data")
	t.Setenv("EXPLORER_NAME_FILTERS", "*.go,*.md")
	t.Setenv("EXPLORER_SHOW_HIDDEN", "true")
	t.Setenv("EXPLORER_STATUS_TIMEOUT", "500ms")
	t.Setenv("EXPLORER_WATCH", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"/srv", "/data"}, cfg.Roots)
	assert.Equal(t, []string{"*.go", "*.md"}, cfg.NameFilters)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, 500*time.Millisecond, cfg.StatusTimeout)
	assert.False(t, cfg.Watch)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("EXPLORER_LOG_LEVEL", "chatty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("window size", func(t *testing.T) {
		t.Setenv("EXPLORER_WINDOW_WIDTH", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unparsable duration", func(t *testing.T) {
		t.Setenv("EXPLORER_STATUS_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-file-explorer/internal/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Simple File Explorer 1.0.0\n", out.String())
}

func TestLaunchOptionsOverrideOnlyChangedFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--root", "/srv", "--root", "/mnt/data", "--show-hidden"}))

	cfg := config.Default()
	cfg.Roots = []string{"/opt"}
	cfg.LogLevel = "warn"

	opts := &launchOptions{}
	opts.roots, _ = cmd.Flags().GetStringSlice("root")
	opts.showHidden, _ = cmd.Flags().GetBool("show-hidden")
	opts.apply(cmd, cfg)

	assert.Equal(t, []string{"/opt", "/srv", "/mnt/data"}, cfg.Roots)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.Execute())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 16*time.Millisecond, cfg.Playback.TickInterval())
}

func TestLoad_NoSources(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  format: json
  level: debug
playback:
  tick: 33ms
`), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 33*time.Millisecond, cfg.Playback.TickInterval())
	assert.False(t, cfg.Metrics.Enabled, "untouched keys keep their defaults")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log.level", "info", "")
	flags.Bool("metrics.enabled", false, "")
	require.NoError(t, flags.Parse([]string{"--log.level=error", "--metrics.enabled"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestTickInterval_FallsBackOnBadValue(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, PlaybackConfig{Tick: "soon"}.TickInterval())
	assert.Equal(t, 16*time.Millisecond, PlaybackConfig{Tick: "-5ms"}.TickInterval())
	assert.Equal(t, 100*time.Millisecond, PlaybackConfig{Tick: "100ms"}.TickInterval())
}

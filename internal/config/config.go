// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package config loads player configuration from defaults, an optional YAML
// file, and command-line flags, in increasing order of precedence.
package config

import (
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config is the player configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Playback PlaybackConfig `koanf:"playback"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Format string `koanf:"format"` // "json" or "text"
	Level  string `koanf:"level"`  // debug, info, warn, error
}

// MetricsConfig configures the observability endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// PlaybackConfig configures the tick loop.
type PlaybackConfig struct {
	// Tick is the advance interval as a Go duration string.
	Tick string `koanf:"tick"`
}

// TickInterval parses the configured tick, falling back to the default on a
// malformed value.
func (p PlaybackConfig) TickInterval() time.Duration {
	d, err := time.ParseDuration(p.Tick)
	if err != nil || d <= 0 {
		return 16 * time.Millisecond
	}
	return d
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      LogConfig{Format: "text", Level: "info"},
		Metrics:  MetricsConfig{Enabled: false, Addr: "127.0.0.1:9100"},
		Playback: PlaybackConfig{Tick: "16ms"},
	}
}

// Load merges defaults, the optional YAML file at path, and the given flag
// set (flags named with dots, e.g. "log.format"). A nil flags is allowed.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, oops.With("path", path).Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return cfg, oops.Wrap(err)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, oops.Wrap(err)
	}
	return cfg, nil
}

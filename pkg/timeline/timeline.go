// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package timeline defines the cutscene document model: an immutable,
// multi-track collection of timed items that the playback scheduler executes.
package timeline

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// TrackKind identifies the lane a track occupies.
type TrackKind string

// Track kinds supported by the playback engine.
const (
	TrackCamera TrackKind = "camera"
	TrackText   TrackKind = "text"
	TrackSprite TrackKind = "sprite"
	TrackMusic  TrackKind = "music"
	TrackWait   TrackKind = "wait"
)

// Valid reports whether k is a known track kind.
func (k TrackKind) Valid() bool {
	switch k {
	case TrackCamera, TrackText, TrackSprite, TrackMusic, TrackWait:
		return true
	default:
		return false
	}
}

// Kinds returns all known track kinds in declaration order.
func Kinds() []TrackKind {
	return []TrackKind{TrackCamera, TrackText, TrackSprite, TrackMusic, TrackWait}
}

// Item is a single timed action on a track.
type Item struct {
	ID     ulid.ULID
	Time   time.Duration // offset from the start of the cutscene
	Action string
	Args   Args
	// Duration is the optional sub-duration for actions that animate or
	// block over a span of time. Zero means instantaneous.
	Duration time.Duration
}

// Track is a lane of same-kind items. Items need not be pre-sorted by the
// document producer; the scheduler establishes a stable time order.
type Track struct {
	ID    ulid.ULID
	Name  string
	Kind  TrackKind
	Items []Item
}

// Cutscene is the declarative timeline document driving a playback session.
// It is read-only for the lifetime of a session.
type Cutscene struct {
	ID       ulid.ULID
	Name     string
	Duration time.Duration
	Tracks   []Track
	Metadata map[string]string
}

// ItemCount returns the total number of items across all tracks.
func (c *Cutscene) ItemCount() int {
	n := 0
	for _, t := range c.Tracks {
		n += len(t.Items)
	}
	return n
}

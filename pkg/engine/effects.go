// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package engine

// Effects tracks the ephemeral engine-side elements a playback session has
// spawned (text elements, sprites, music) so that session teardown can
// release everything in a single sweep instead of relying on handlers to
// remove what they created.
//
// Effects is owned by the scheduler and accessed only from its single
// dispatch path; it is not safe for concurrent use on its own.
type Effects struct {
	texts   map[string]struct{}
	sprites map[string]struct{}
	music   bool
}

// NewEffects creates an empty effect registry.
func NewEffects() *Effects {
	return &Effects{
		texts:   make(map[string]struct{}),
		sprites: make(map[string]struct{}),
	}
}

// TrackText records a spawned text element.
func (e *Effects) TrackText(id string) {
	e.texts[id] = struct{}{}
}

// UntrackText forgets a text element that a handler already removed.
func (e *Effects) UntrackText(id string) {
	delete(e.texts, id)
}

// TrackSprite records a spawned sprite.
func (e *Effects) TrackSprite(id string) {
	e.sprites[id] = struct{}{}
}

// UntrackSprite forgets a sprite that a handler already removed.
func (e *Effects) UntrackSprite(id string) {
	delete(e.sprites, id)
}

// TrackMusic records that the session started music playback.
func (e *Effects) TrackMusic() {
	e.music = true
}

// UntrackMusic forgets music that a handler already stopped.
func (e *Effects) UntrackMusic() {
	e.music = false
}

// Live returns the number of tracked ephemeral elements.
func (e *Effects) Live() int {
	n := len(e.texts) + len(e.sprites)
	if e.music {
		n++
	}
	return n
}

// ReleaseAll removes every tracked element through the capability port and
// clears the registry. Absent capabilities are no-ops, so release is total
// against any host.
func (e *Effects) ReleaseAll(c *Capabilities) {
	for id := range e.texts {
		c.HideText(id)
	}
	for id := range e.sprites {
		c.HideSprite(id)
	}
	if e.music {
		c.StopMusic()
	}
	e.texts = make(map[string]struct{})
	e.sprites = make(map[string]struct{})
	e.music = false
}

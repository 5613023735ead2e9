// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package engine defines the capability port through which action handlers
// reach the host game engine. A capability is a single optional operation;
// invoking an absent capability is a successful no-op, so a cutscene can
// always reach completion even against a minimal host.
package engine

import "time"

// Capabilities is the set of host operations available to action handlers.
// Each field is independently optional; a nil *Capabilities is a valid
// minimal host that implements nothing. The exported methods are nil-safe
// and must be used instead of calling the fields directly.
type Capabilities struct {
	PanCameraFunc      func(x, y float64)
	ZoomCameraFunc     func(level float64)
	ShakeCameraFunc    func(intensity float64, d time.Duration)
	ShowTextFunc       func(id, text string, x, y float64)
	HideTextFunc       func(id string)
	ShowSpriteFunc     func(id, asset string, x, y float64)
	MoveSpriteFunc     func(id string, x, y float64)
	HideSpriteFunc     func(id string)
	PlayMusicFunc      func(track string, loop bool)
	StopMusicFunc      func()
	PauseGameplayFunc  func()
	ResumeGameplayFunc func()
}

// PanCamera moves the camera to an absolute position.
func (c *Capabilities) PanCamera(x, y float64) {
	if c == nil || c.PanCameraFunc == nil {
		return
	}
	c.PanCameraFunc(x, y)
}

// ZoomCamera sets the camera zoom level (1.0 is neutral).
func (c *Capabilities) ZoomCamera(level float64) {
	if c == nil || c.ZoomCameraFunc == nil {
		return
	}
	c.ZoomCameraFunc(level)
}

// ShakeCamera applies a screen shake for the given duration.
func (c *Capabilities) ShakeCamera(intensity float64, d time.Duration) {
	if c == nil || c.ShakeCameraFunc == nil {
		return
	}
	c.ShakeCameraFunc(intensity, d)
}

// ShowText displays (or updates) a text element at a screen position.
func (c *Capabilities) ShowText(id, text string, x, y float64) {
	if c == nil || c.ShowTextFunc == nil {
		return
	}
	c.ShowTextFunc(id, text, x, y)
}

// HideText removes a text element.
func (c *Capabilities) HideText(id string) {
	if c == nil || c.HideTextFunc == nil {
		return
	}
	c.HideTextFunc(id)
}

// ShowSprite displays (or replaces) a sprite at a world position.
func (c *Capabilities) ShowSprite(id, asset string, x, y float64) {
	if c == nil || c.ShowSpriteFunc == nil {
		return
	}
	c.ShowSpriteFunc(id, asset, x, y)
}

// MoveSprite repositions a sprite.
func (c *Capabilities) MoveSprite(id string, x, y float64) {
	if c == nil || c.MoveSpriteFunc == nil {
		return
	}
	c.MoveSpriteFunc(id, x, y)
}

// HideSprite removes a sprite.
func (c *Capabilities) HideSprite(id string) {
	if c == nil || c.HideSpriteFunc == nil {
		return
	}
	c.HideSpriteFunc(id)
}

// PlayMusic starts a music track.
func (c *Capabilities) PlayMusic(track string, loop bool) {
	if c == nil || c.PlayMusicFunc == nil {
		return
	}
	c.PlayMusicFunc(track, loop)
}

// StopMusic stops the current music track.
func (c *Capabilities) StopMusic() {
	if c == nil || c.StopMusicFunc == nil {
		return
	}
	c.StopMusicFunc()
}

// PauseGameplay suspends the host's own simulation for the cutscene.
func (c *Capabilities) PauseGameplay() {
	if c == nil || c.PauseGameplayFunc == nil {
		return
	}
	c.PauseGameplayFunc()
}

// ResumeGameplay resumes the host's own simulation.
func (c *Capabilities) ResumeGameplay() {
	if c == nil || c.ResumeGameplayFunc == nil {
		return
	}
	c.ResumeGameplayFunc()
}

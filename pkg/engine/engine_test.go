// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stagehand/stagehand/pkg/engine"
	"github.com/stagehand/stagehand/pkg/engine/enginetest"
)

func TestCapabilities_NilReceiverIsSafe(t *testing.T) {
	var c *engine.Capabilities

	// A nil capability set is the minimal valid host: every call is a no-op.
	assert.NotPanics(t, func() {
		c.PanCamera(1, 2)
		c.ZoomCamera(1.5)
		c.ShakeCamera(1, time.Second)
		c.ShowText("id", "hello", 0, 0)
		c.HideText("id")
		c.ShowSprite("id", "hero.png", 0, 0)
		c.MoveSprite("id", 3, 4)
		c.HideSprite("id")
		c.PlayMusic("theme", true)
		c.StopMusic()
		c.PauseGameplay()
		c.ResumeGameplay()
	})
}

func TestCapabilities_UnsetFuncIsNoOp(t *testing.T) {
	c := &engine.Capabilities{}
	assert.NotPanics(t, func() {
		c.PanCamera(1, 2)
		c.StopMusic()
	})
}

func TestRecorder_CapturesCallsInOrder(t *testing.T) {
	rec := enginetest.NewRecorder()
	c := rec.Capabilities()

	c.ShowText("dialog", "hi", 10, 20)
	c.PanCamera(1, 2)
	c.ShowText("dialog", "bye", 10, 20)

	assert.Equal(t, []string{"ShowText", "PanCamera", "ShowText"}, rec.Ops())
	calls := rec.CallsFor("ShowText")
	assert.Len(t, calls, 2)
	assert.Equal(t, []any{"dialog", "hi", 10.0, 20.0}, calls[0].Args)

	rec.Reset()
	assert.Empty(t, rec.Calls())
}

func TestEffects_ReleaseAllSweepsEverything(t *testing.T) {
	rec := enginetest.NewRecorder()
	e := engine.NewEffects()

	e.TrackText("dialog")
	e.TrackSprite("hero")
	e.TrackSprite("villain")
	e.TrackMusic()
	assert.Equal(t, 4, e.Live())

	e.ReleaseAll(rec.Capabilities())
	assert.Equal(t, 0, e.Live())

	assert.Len(t, rec.CallsFor("HideText"), 1)
	assert.Len(t, rec.CallsFor("HideSprite"), 2)
	assert.Len(t, rec.CallsFor("StopMusic"), 1)

	// Release is idempotent: the registry is empty afterwards.
	rec.Reset()
	e.ReleaseAll(rec.Capabilities())
	assert.Empty(t, rec.Calls())
}

func TestEffects_UntrackSkipsReleased(t *testing.T) {
	rec := enginetest.NewRecorder()
	e := engine.NewEffects()

	e.TrackText("dialog")
	e.UntrackText("dialog")
	e.TrackMusic()
	e.UntrackMusic()
	assert.Equal(t, 0, e.Live())

	e.ReleaseAll(rec.Capabilities())
	assert.Empty(t, rec.Calls(), "handler-removed elements are not swept twice")
}

func TestEffects_ReleaseAllAgainstNilHost(t *testing.T) {
	e := engine.NewEffects()
	e.TrackText("dialog")
	assert.NotPanics(t, func() { e.ReleaseAll(nil) })
	assert.Equal(t, 0, e.Live())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stagehand/stagehand/pkg/timeline"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, Idle.Terminal())
	assert.False(t, Playing.Terminal())
	assert.False(t, Paused.Terminal())
	assert.True(t, Completed.Terminal())
	assert.True(t, Stopped.Terminal())
}

func TestSession_ResetExecuted(t *testing.T) {
	early := item(0, "mark", nil)
	boundary := item(time.Second, "mark", nil)
	late := item(2*time.Second, "mark", nil)
	sess := newSession(scene(3*time.Second, early, boundary, late))

	sess.resetExecuted(time.Second)
	_, earlyDone := sess.executed[early.ID]
	_, boundaryDone := sess.executed[boundary.ID]
	_, lateDone := sess.executed[late.ID]

	assert.True(t, earlyDone)
	assert.False(t, boundaryDone, "item exactly at the target still fires")
	assert.False(t, lateDone)
}

func TestSession_ProgressRatio(t *testing.T) {
	sess := newSession(scene(2 * time.Second))
	assert.Zero(t, sess.progressRatio())

	sess.cursor = time.Second
	assert.InDelta(t, 0.5, sess.progressRatio(), 1e-9)

	sess.cursor = 5 * time.Second
	assert.Equal(t, 1.0, sess.progressRatio())
}

func TestNewSession_FlattensAcrossTracks(t *testing.T) {
	cs := &timeline.Cutscene{
		ID:       timeline.NewID(),
		Name:     "flatten",
		Duration: time.Second,
		Tracks: []timeline.Track{
			{ID: timeline.NewID(), Kind: timeline.TrackText, Items: []timeline.Item{item(0, "show", nil)}},
			{ID: timeline.NewID(), Kind: timeline.TrackMusic, Items: []timeline.Item{item(0, "play", nil)}},
		},
	}
	sess := newSession(cs)
	assert.Len(t, sess.order, 2)
	assert.Equal(t, timeline.TrackText, sess.order[0].kind)
	assert.Equal(t, timeline.TrackMusic, sess.order[1].kind)
	assert.Equal(t, Playing, sess.state)
}

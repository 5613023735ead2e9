// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package enginetest provides a recording capability implementation for
// tests.
package enginetest

import (
	"sync"
	"time"

	"github.com/stagehand/stagehand/pkg/engine"
)

// Call is a single recorded capability invocation.
type Call struct {
	Op   string
	Args []any
}

// Recorder implements every capability and records each invocation in order.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(op string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

// Capabilities returns a capability set whose every operation records into r.
func (r *Recorder) Capabilities() *engine.Capabilities {
	return &engine.Capabilities{
		PanCameraFunc:      func(x, y float64) { r.record("PanCamera", x, y) },
		ZoomCameraFunc:     func(level float64) { r.record("ZoomCamera", level) },
		ShakeCameraFunc:    func(i float64, d time.Duration) { r.record("ShakeCamera", i, d) },
		ShowTextFunc:       func(id, text string, x, y float64) { r.record("ShowText", id, text, x, y) },
		HideTextFunc:       func(id string) { r.record("HideText", id) },
		ShowSpriteFunc:     func(id, asset string, x, y float64) { r.record("ShowSprite", id, asset, x, y) },
		MoveSpriteFunc:     func(id string, x, y float64) { r.record("MoveSprite", id, x, y) },
		HideSpriteFunc:     func(id string) { r.record("HideSprite", id) },
		PlayMusicFunc:      func(track string, loop bool) { r.record("PlayMusic", track, loop) },
		StopMusicFunc:      func() { r.record("StopMusic") },
		PauseGameplayFunc:  func() { r.record("PauseGameplay") },
		ResumeGameplayFunc: func() { r.record("ResumeGameplay") },
	}
}

// Calls returns a copy of all recorded calls in invocation order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsFor returns recorded calls for a single operation, in order.
func (r *Recorder) CallsFor(op string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Ops returns the operation names of all recorded calls, in order.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package actions

import (
	"context"
	"time"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/ease"
	"github.com/stagehand/stagehand/pkg/timeline"
)

func registerCamera(reg *action.Registry) {
	reg.Register(action.Entry{
		Kind:    timeline.TrackCamera,
		Action:  "pan",
		Handler: handleCameraPan,
		Help:    "Move the camera to a position, optionally tweened over the item duration",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackCamera,
		Action:  "zoom",
		Handler: handleCameraZoom,
		Help:    "Set the camera zoom level, optionally tweened over the item duration",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackCamera,
		Action:  "shake",
		Handler: handleCameraShake,
		Help:    "Shake the camera with the given intensity for the item duration",
		Source:  builtinSource,
	})
}

// handleCameraPan moves the camera to (x, y). With a positive item duration
// the movement is an eased tween from (from_x, from_y), defaulting to the
// origin; without one the camera snaps.
//
// Args: x, y (target, default 0), from_x, from_y (default 0),
// easing (default "inOutQuad").
func handleCameraPan(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	toX := args.Float("x", 0)
	toY := args.Float("y", 0)

	if exec.Item.Duration <= 0 {
		exec.Engine.PanCamera(toX, toY)
		return action.Done(), nil
	}

	return action.Animate(&panTween{
		fromX: args.Float("from_x", 0),
		fromY: args.Float("from_y", 0),
		toX:   toX,
		toY:   toY,
		start: exec.Item.Time,
		dur:   exec.Item.Duration,
		curve: curveFromArgs(args),
	}), nil
}

type panTween struct {
	fromX, fromY float64
	toX, toY     float64
	start        time.Duration
	dur          time.Duration
	curve        ease.Func
}

func (t *panTween) Update(exec *action.Execution) bool {
	p := tweenProgress(exec.Cursor, t.start, t.dur)
	v := t.curve(p)
	exec.Engine.PanCamera(ease.Lerp(t.fromX, t.toX, v), ease.Lerp(t.fromY, t.toY, v))
	return p >= 1
}

func (t *panTween) Cancel(_ *action.Execution) {}

// handleCameraZoom sets the zoom level. With a positive item duration the
// zoom is an eased tween from the "from" level.
//
// Args: level (target, default 1), from (default 1), easing (default
// "inOutQuad").
func handleCameraZoom(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	to := args.Float("level", 1)

	if exec.Item.Duration <= 0 {
		exec.Engine.ZoomCamera(to)
		return action.Done(), nil
	}

	return action.Animate(&zoomTween{
		from:  args.Float("from", 1),
		to:    to,
		start: exec.Item.Time,
		dur:   exec.Item.Duration,
		curve: curveFromArgs(args),
	}), nil
}

type zoomTween struct {
	from, to float64
	start    time.Duration
	dur      time.Duration
	curve    ease.Func
}

func (t *zoomTween) Update(exec *action.Execution) bool {
	p := tweenProgress(exec.Cursor, t.start, t.dur)
	exec.Engine.ZoomCamera(ease.Lerp(t.from, t.to, t.curve(p)))
	return p >= 1
}

func (t *zoomTween) Cancel(_ *action.Execution) {}

// handleCameraShake applies a one-shot shake; amplitude decay is the host's
// concern.
//
// Args: intensity (default 1). The shake lasts the item duration, or 500ms
// when none is set.
func handleCameraShake(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	d := exec.Item.Duration
	if d <= 0 {
		d = 500 * time.Millisecond
	}
	exec.Engine.ShakeCamera(exec.Item.Args.Float("intensity", 1), d)
	return action.Done(), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package actions provides the built-in handlers for the standard track
// kinds: camera, text, sprite, music, and wait. All argument keys fall back
// to documented defaults, and every engine call is a no-op against a host
// missing the capability.
package actions

import (
	"time"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/ease"
	"github.com/stagehand/stagehand/pkg/timeline"
)

const builtinSource = "builtin"

// RegisterBuiltins registers every built-in handler with the registry.
func RegisterBuiltins(reg *action.Registry) {
	registerCamera(reg)
	registerText(reg)
	registerSprite(reg)
	registerMusic(reg)
	registerWait(reg)
}

// curveFromArgs resolves the "easing" argument, defaulting to inOutQuad.
func curveFromArgs(args timeline.Args) ease.Func {
	name := args.String("easing", "inOutQuad")
	if f, ok := ease.ByName(name); ok {
		return f
	}
	return ease.InOutQuad
}

// tweenProgress maps the cursor onto [0, 1] across an item's sub-duration.
func tweenProgress(cursor, start, dur time.Duration) float64 {
	if dur <= 0 {
		return 1
	}
	p := float64(cursor-start) / float64(dur)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

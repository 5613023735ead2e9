// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/stagehand/stagehand/pkg/engine"
)

// newConsoleCapabilities renders engine effects as terminal output. It is
// the minimal host the player ships with; a game engine would supply its
// own capability set instead.
func newConsoleCapabilities(w io.Writer) *engine.Capabilities {
	return &engine.Capabilities{
		PanCameraFunc: func(x, y float64) {
			fmt.Fprintf(w, "  [camera] pan -> (%.1f, %.1f)\n", x, y)
		},
		ZoomCameraFunc: func(level float64) {
			fmt.Fprintf(w, "  [camera] zoom -> %.2f\n", level)
		},
		ShakeCameraFunc: func(intensity float64, d time.Duration) {
			fmt.Fprintf(w, "  [camera] shake intensity=%.1f for %s\n", intensity, d)
		},
		ShowTextFunc: func(id, text string, x, y float64) {
			fmt.Fprintf(w, "  [text:%s] %q\n", id, text)
		},
		HideTextFunc: func(id string) {
			fmt.Fprintf(w, "  [text:%s] hidden\n", id)
		},
		ShowSpriteFunc: func(id, asset string, x, y float64) {
			fmt.Fprintf(w, "  [sprite:%s] show %s at (%.1f, %.1f)\n", id, asset, x, y)
		},
		MoveSpriteFunc: func(id string, x, y float64) {
			fmt.Fprintf(w, "  [sprite:%s] move -> (%.1f, %.1f)\n", id, x, y)
		},
		HideSpriteFunc: func(id string) {
			fmt.Fprintf(w, "  [sprite:%s] hidden\n", id)
		},
		PlayMusicFunc: func(track string, loop bool) {
			fmt.Fprintf(w, "  [music] play %s loop=%v\n", track, loop)
		},
		StopMusicFunc: func() {
			fmt.Fprintln(w, "  [music] stop")
		},
		PauseGameplayFunc: func() {
			fmt.Fprintln(w, "  [gameplay] paused")
		},
		ResumeGameplayFunc: func() {
			fmt.Fprintln(w, "  [gameplay] resumed")
		},
	}
}

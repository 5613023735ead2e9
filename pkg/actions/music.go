// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package actions

import (
	"context"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/timeline"
)

func registerMusic(reg *action.Registry) {
	reg.Register(action.Entry{
		Kind:    timeline.TrackMusic,
		Action:  "play",
		Handler: handleMusicPlay,
		Help:    "Start a music track",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackMusic,
		Action:  "stop",
		Handler: handleMusicStop,
		Help:    "Stop the current music track",
		Source:  builtinSource,
	})
}

// handleMusicPlay starts a music track and tracks it for teardown, so a
// skipped cutscene stops its own music.
//
// Args: track (default ""), loop (default false).
func handleMusicPlay(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	exec.Engine.PlayMusic(args.String("track", ""), args.Bool("loop", false))
	exec.Effects.TrackMusic()
	return action.Done(), nil
}

// handleMusicStop stops the current music track.
func handleMusicStop(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	exec.Engine.StopMusic()
	exec.Effects.UntrackMusic()
	return action.Done(), nil
}

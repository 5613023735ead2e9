// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package actions

import (
	"context"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/timeline"
)

func registerWait(reg *action.Registry) {
	reg.Register(action.Entry{
		Kind:    timeline.TrackWait,
		Action:  "wait",
		Handler: handleWait,
		Help:    "Gate the whole timeline for a duration",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackWait,
		Action:  "waitForInput",
		Handler: handleWaitForInput,
		Help:    "Gate the whole timeline until the player provides input",
		Source:  builtinSource,
	})
}

// handleWait gates the timeline for the "duration" argument, falling back to
// the item's own duration. A non-positive wait completes immediately.
func handleWait(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	d := exec.Item.Args.Duration("duration", exec.Item.Duration)
	if d <= 0 {
		return action.Done(), nil
	}
	return action.Wait(d), nil
}

// handleWaitForInput gates the timeline until the host reports a matching
// input event. It never resolves on its own; Skip is the forced-unblock
// path.
//
// Args: key (default "", meaning any input).
func handleWaitForInput(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	key := exec.Item.Args.String("key", "")
	if key == "" {
		return action.WaitForInput(action.AnyInput()), nil
	}
	return action.WaitForInput(action.Key(key)), nil
}

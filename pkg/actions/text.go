// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package actions

import (
	"context"
	"time"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/timeline"
)

// DefaultTextID is the element id used when a text item names none. Most
// cutscenes drive a single dialog box, so one shared element is the common
// case.
const DefaultTextID = "dialog"

func registerText(reg *action.Registry) {
	reg.Register(action.Entry{
		Kind:    timeline.TrackText,
		Action:  "show",
		Handler: handleTextShow,
		Help:    "Show a text element, typewriter-revealed when the item has a duration",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackText,
		Action:  "hide",
		Handler: handleTextHide,
		Help:    "Hide a text element",
		Source:  builtinSource,
	})
}

// handleTextShow displays a text element. With a positive item duration the
// text is revealed rune by rune across that span (typewriter); otherwise it
// appears at once. The element is tracked for release at session teardown.
//
// Args: text (default ""), id (default "dialog"), x, y (default 0).
func handleTextShow(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	id := args.String("id", DefaultTextID)
	text := args.String("text", "")
	x := args.Float("x", 0)
	y := args.Float("y", 0)

	exec.Effects.TrackText(id)

	if exec.Item.Duration <= 0 {
		exec.Engine.ShowText(id, text, x, y)
		return action.Done(), nil
	}

	// First frame shows an empty element so the box appears immediately.
	exec.Engine.ShowText(id, "", x, y)
	return action.Animate(&typewriter{
		id:    id,
		runes: []rune(text),
		x:     x,
		y:     y,
		start: exec.Item.Time,
		dur:   exec.Item.Duration,
	}), nil
}

// typewriter reveals text progressively across the item's sub-duration. It
// is a running handle, not a gate: downstream items keep dispatching while
// the text types out.
type typewriter struct {
	id       string
	runes    []rune
	x, y     float64
	start    time.Duration
	dur      time.Duration
	revealed int
}

func (tw *typewriter) Update(exec *action.Execution) bool {
	p := tweenProgress(exec.Cursor, tw.start, tw.dur)
	n := int(p * float64(len(tw.runes)))
	if n > len(tw.runes) {
		n = len(tw.runes)
	}
	if n != tw.revealed {
		tw.revealed = n
		exec.Engine.ShowText(tw.id, string(tw.runes[:n]), tw.x, tw.y)
	}
	return p >= 1
}

// Cancel removes the half-typed element; a skipped cutscene must not leave
// partial dialog on screen.
func (tw *typewriter) Cancel(exec *action.Execution) {
	exec.Engine.HideText(tw.id)
	exec.Effects.UntrackText(tw.id)
}

// handleTextHide removes a text element.
//
// Args: id (default "dialog").
func handleTextHide(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	id := exec.Item.Args.String("id", DefaultTextID)
	exec.Engine.HideText(id)
	exec.Effects.UntrackText(id)
	return action.Done(), nil
}

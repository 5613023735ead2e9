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

func registerSprite(reg *action.Registry) {
	reg.Register(action.Entry{
		Kind:    timeline.TrackSprite,
		Action:  "show",
		Handler: handleSpriteShow,
		Help:    "Spawn a sprite at a position",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackSprite,
		Action:  "move",
		Handler: handleSpriteMove,
		Help:    "Move a sprite to a position, tweened over the item duration",
		Source:  builtinSource,
	})
	reg.Register(action.Entry{
		Kind:    timeline.TrackSprite,
		Action:  "hide",
		Handler: handleSpriteHide,
		Help:    "Remove a sprite",
		Source:  builtinSource,
	})
}

// handleSpriteShow spawns a sprite and tracks it for release at teardown.
//
// Args: id (default "sprite"), asset (default ""), x, y (default 0).
func handleSpriteShow(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	id := args.String("id", "sprite")
	exec.Engine.ShowSprite(id, args.String("asset", ""), args.Float("x", 0), args.Float("y", 0))
	exec.Effects.TrackSprite(id)
	return action.Done(), nil
}

// handleSpriteMove repositions a sprite. With a positive item duration the
// movement is an eased tween from (from_x, from_y); otherwise the sprite
// snaps to the target.
//
// Args: id (default "sprite"), x, y (target, default 0), from_x, from_y
// (default 0), easing (default "inOutQuad").
func handleSpriteMove(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	args := exec.Item.Args
	id := args.String("id", "sprite")
	toX := args.Float("x", 0)
	toY := args.Float("y", 0)

	if exec.Item.Duration <= 0 {
		exec.Engine.MoveSprite(id, toX, toY)
		return action.Done(), nil
	}

	return action.Animate(&spriteMove{
		id:    id,
		fromX: args.Float("from_x", 0),
		fromY: args.Float("from_y", 0),
		toX:   toX,
		toY:   toY,
		start: exec.Item.Time,
		dur:   exec.Item.Duration,
		curve: curveFromArgs(args),
	}), nil
}

type spriteMove struct {
	id           string
	fromX, fromY float64
	toX, toY     float64
	start        time.Duration
	dur          time.Duration
	curve        ease.Func
}

func (m *spriteMove) Update(exec *action.Execution) bool {
	p := tweenProgress(exec.Cursor, m.start, m.dur)
	v := m.curve(p)
	exec.Engine.MoveSprite(m.id, ease.Lerp(m.fromX, m.toX, v), ease.Lerp(m.fromY, m.toY, v))
	return p >= 1
}

func (m *spriteMove) Cancel(_ *action.Execution) {}

// handleSpriteHide removes a sprite.
//
// Args: id (default "sprite").
func handleSpriteHide(_ context.Context, exec *action.Execution) (action.Outcome, error) {
	id := exec.Item.Args.String("id", "sprite")
	exec.Engine.HideSprite(id)
	exec.Effects.UntrackSprite(id)
	return action.Done(), nil
}

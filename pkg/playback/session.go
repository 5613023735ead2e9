// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package playback

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/engine"
	"github.com/stagehand/stagehand/pkg/timeline"
)

// dispatchRef is one item in the flattened dispatch order.
type dispatchRef struct {
	trackIndex int
	kind       timeline.TrackKind
	item       timeline.Item
}

// pendingWait is an in-flight gating action. A timed wait counts down its
// remaining duration; an input wait (predicate != nil) freezes the timeline
// until a matching input arrives or the session is skipped.
type pendingWait struct {
	itemID    ulid.ULID
	remaining time.Duration
	predicate action.InputPredicate
}

// runningEntry is a live non-gating animation polled every tick.
type runningEntry struct {
	ref    dispatchRef
	handle action.RunningHandle
}

// session is the single mutable entity of a playback. It is owned by the
// scheduler and mutated only under its lock.
type session struct {
	cutscene *timeline.Cutscene
	order    []dispatchRef
	cursor   time.Duration
	state    State
	executed map[ulid.ULID]struct{}
	gate     *pendingWait
	running  []runningEntry
	effects  *engine.Effects
}

// newSession flattens the cutscene's tracks into a single dispatch order
// sorted by (time, track declaration order, item ID) and starts at cursor 0.
func newSession(cs *timeline.Cutscene) *session {
	order := make([]dispatchRef, 0, cs.ItemCount())
	for ti, track := range cs.Tracks {
		for _, item := range track.Items {
			order = append(order, dispatchRef{
				trackIndex: ti,
				kind:       track.Kind,
				item:       item,
			})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.item.Time != b.item.Time {
			return a.item.Time < b.item.Time
		}
		if a.trackIndex != b.trackIndex {
			return a.trackIndex < b.trackIndex
		}
		return a.item.ID.Compare(b.item.ID) < 0
	})

	return &session{
		cutscene: cs,
		order:    order,
		state:    Playing,
		executed: make(map[ulid.ULID]struct{}, len(order)),
		effects:  engine.NewEffects(),
	}
}

// resetExecuted recomputes the executed set for a seek to t: everything
// strictly before t is marked done without being re-dispatched, so seeking
// never replays earlier effects.
func (s *session) resetExecuted(t time.Duration) {
	s.executed = make(map[ulid.ULID]struct{}, len(s.order))
	for _, ref := range s.order {
		if ref.item.Time < t {
			s.executed[ref.item.ID] = struct{}{}
		}
	}
}

// progressRatio returns cursor/duration clamped to [0, 1].
func (s *session) progressRatio() float64 {
	if s.cutscene.Duration <= 0 {
		return 0
	}
	r := float64(s.cursor) / float64(s.cutscene.Duration)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

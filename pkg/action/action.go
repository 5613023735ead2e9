// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package action provides the handler registry and the execution outcome
// model for timed cutscene items. Handlers are looked up by the pair of
// track kind and action name, so the same bare name can carry different
// behavior on different tracks without shadowing.
package action

import (
	"context"
	"log/slog"
	"time"

	"github.com/stagehand/stagehand/pkg/engine"
	"github.com/stagehand/stagehand/pkg/timeline"
)

// Input is a host input event, used to resolve input waits.
type Input struct {
	Key string
}

// InputPredicate reports whether an input event resolves a pending wait.
type InputPredicate func(Input) bool

// AnyInput matches every input event.
func AnyInput() InputPredicate {
	return func(Input) bool { return true }
}

// Key matches input events carrying the given key code.
func Key(code string) InputPredicate {
	return func(in Input) bool { return in.Key == code }
}

// OutcomeKind discriminates the execution outcome variants.
type OutcomeKind uint8

// Outcome variants. Blocking gates the whole timeline; Running continues
// across ticks without gating subsequent dispatch. The two are distinct
// variants so the scheduler's gating logic is unambiguous.
const (
	OutcomeDone OutcomeKind = iota
	OutcomeBlocking
	OutcomeRunning
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDone:
		return "done"
	case OutcomeBlocking:
		return "blocking"
	case OutcomeRunning:
		return "running"
	default:
		return "unknown"
	}
}

// RunningHandle is a non-gating animation that self-updates across ticks.
// The scheduler polls Update every tick until it reports completion, and
// calls Cancel exactly once if the session ends first.
type RunningHandle interface {
	// Update samples the animation at exec.Cursor. It returns true once the
	// animation has finished.
	Update(exec *Execution) bool
	// Cancel releases anything the handle allocated. It is not called after
	// Update has returned true.
	Cancel(exec *Execution)
}

// Outcome is the result of dispatching one item.
type Outcome struct {
	Kind OutcomeKind
	// Remaining is the countdown of a timed gate (Kind == OutcomeBlocking,
	// Predicate == nil).
	Remaining time.Duration
	// Predicate is the unblocking condition of an input gate.
	Predicate InputPredicate
	// Handle is the live animation of a running outcome.
	Handle RunningHandle
}

// Done reports that the item completed synchronously.
func Done() Outcome {
	return Outcome{Kind: OutcomeDone}
}

// Wait gates the whole timeline for the given duration.
func Wait(d time.Duration) Outcome {
	return Outcome{Kind: OutcomeBlocking, Remaining: d}
}

// WaitForInput gates the whole timeline until an input event satisfies p.
func WaitForInput(p InputPredicate) Outcome {
	return Outcome{Kind: OutcomeBlocking, Predicate: p}
}

// Animate registers a non-gating running handle polled every tick.
func Animate(h RunningHandle) Outcome {
	return Outcome{Kind: OutcomeRunning, Handle: h}
}

// Execution provides context for one handler invocation. Handlers must not
// retain it beyond the call; running handles receive a fresh Execution on
// every poll.
type Execution struct {
	Item    timeline.Item
	Cursor  time.Duration
	Engine  *engine.Capabilities
	Effects *engine.Effects
	Logger  *slog.Logger
}

// Handler executes one timed item and reports how it resolved. Errors are
// recovered at the dispatch boundary: the item is logged, marked executed,
// and playback continues.
type Handler func(ctx context.Context, exec *Execution) (Outcome, error)

// Entry is a registered handler.
type Entry struct {
	Kind    timeline.TrackKind
	Action  string
	Handler Handler
	Help    string // short description (one line)
	Source  string // "builtin" or the registering subsystem
}

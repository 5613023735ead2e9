// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package playback implements the cutscene playback session and its
// scheduler: a single-threaded, cooperative, tick-driven state machine. The
// host calls Advance once per frame from its own loop; there is no
// parallelism inside the scheduler.
package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/stagehand/stagehand/internal/observability"
	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/engine"
	"github.com/stagehand/stagehand/pkg/errutil"
	"github.com/stagehand/stagehand/pkg/timeline"
)

var tracer = otel.Tracer("stagehand/playback")

// Scheduler drives at most one playback session at a time. Starting a new
// cutscene while one is active implicitly stops the previous session.
//
// All methods are safe for concurrent use, but the intended model is a
// single host loop calling Advance. Hooks are invoked after the scheduler's
// internal state has settled and may call back into the scheduler.
type Scheduler struct {
	registry *action.Registry
	caps     *engine.Capabilities
	logger   *slog.Logger

	onProgress func(time.Duration)
	onComplete func()

	mu      sync.Mutex
	session *session
}

// Option configures a Scheduler during construction.
type Option func(*Scheduler)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithOnProgress registers the progress hook, fired once per Advance call
// while the session is playing.
func WithOnProgress(f func(cursor time.Duration)) Option {
	return func(s *Scheduler) {
		s.onProgress = f
	}
}

// WithOnComplete registers the completion hook, fired exactly once when a
// session reaches the end of its timeline.
func WithOnComplete(f func()) Option {
	return func(s *Scheduler) {
		s.onComplete = f
	}
}

// New creates a scheduler dispatching against the given registry and
// capability port. A nil caps is a valid minimal host.
func New(registry *action.Registry, caps *engine.Capabilities, opts ...Option) *Scheduler {
	s := &Scheduler{
		registry: registry,
		caps:     caps,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Play validates the document and starts a new session at cursor 0.
// A structurally invalid cutscene never starts: validation errors surface
// here before any state mutation, and a previously active session keeps
// playing. On success any previous session is stopped first and gameplay is
// paused through the capability port.
func (s *Scheduler) Play(ctx context.Context, cs *timeline.Cutscene) error {
	if cs == nil {
		return ErrNilCutscene()
	}
	if err := cs.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && !s.session.state.Terminal() {
		s.endLocked(ctx, Stopped, observability.OutcomeSuperseded)
	}

	s.session = newSession(cs)
	s.caps.PauseGameplay()
	s.logger.InfoContext(ctx, "cutscene started",
		"cutscene", cs.Name,
		"duration", cs.Duration.String(),
		"items", cs.ItemCount(),
	)
	return nil
}

// Advance moves the play cursor forward by dt and dispatches every item that
// has become due, in timeline order. A gating wait consumes dt before the
// cursor sweeps further; an input wait freezes time entirely. Running
// animations are polled after dispatch. Reaching the cutscene duration with
// no gate pending completes the session in the same tick.
func (s *Scheduler) Advance(ctx context.Context, dt time.Duration) {
	start := time.Now()
	defer func() {
		observability.RecordAdvanceDuration(time.Since(start))
	}()
	if dt < 0 {
		dt = 0
	}

	s.mu.Lock()
	sess := s.session
	if sess == nil || sess.state != Playing {
		s.mu.Unlock()
		return
	}

	budget := dt
	gated := false

	if g := sess.gate; g != nil {
		if g.predicate != nil {
			// Input wait: time is frozen until the host reports a matching
			// input or the session is skipped.
			gated = true
		} else {
			use := budget
			if use > g.remaining {
				use = g.remaining
			}
			g.remaining -= use
			budget -= use
			sess.cursor = capDuration(sess.cursor+use, sess.cutscene.Duration)
			if g.remaining > 0 {
				gated = true
			} else {
				sess.gate = nil
			}
		}
	}

	if !gated {
		target := capDuration(sess.cursor+budget, sess.cutscene.Duration)
		s.dispatchDue(ctx, sess, target)
		if sess.gate == nil {
			sess.cursor = target
		}
	}

	s.pollRunning(ctx, sess)

	cursor := sess.cursor
	completed := false
	if sess.gate == nil && sess.cursor >= sess.cutscene.Duration {
		s.endLocked(ctx, Completed, observability.OutcomeCompleted)
		completed = true
	}
	s.mu.Unlock()

	if s.onProgress != nil {
		s.onProgress(cursor)
	}
	if completed && s.onComplete != nil {
		s.onComplete()
	}
}

// Pause freezes the cursor and any pending wait countdown.
func (s *Scheduler) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess == nil {
		return ErrNoSession("pause")
	}
	if sess.state != Playing {
		return ErrBadState("pause", sess.state)
	}
	sess.state = Paused
	return nil
}

// Resume unfreezes a paused session.
func (s *Scheduler) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess == nil {
		return ErrNoSession("resume")
	}
	if sess.state != Paused {
		return ErrBadState("resume", sess.state)
	}
	sess.state = Playing
	return nil
}

// Seek moves the cursor to t (clamped to the timeline) and marks every item
// strictly before t as already executed, so earlier items are never replayed.
// Any pending gate and all running animations are canceled: a stale wait must
// not gate the new epoch. The Playing/Paused state is preserved.
func (s *Scheduler) Seek(ctx context.Context, t time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess == nil {
		return ErrNoSession("seek")
	}
	if sess.state != Playing && sess.state != Paused {
		return ErrBadState("seek", sess.state)
	}

	if t < 0 {
		t = 0
	}
	t = capDuration(t, sess.cutscene.Duration)

	sess.gate = nil
	s.cancelRunning(ctx, sess)
	sess.resetExecuted(t)
	sess.cursor = t

	s.logger.DebugContext(ctx, "seek",
		"cutscene", sess.cutscene.Name,
		"cursor", t.String(),
	)
	return nil
}

// Skip abandons the session: the pending gate is cleared, every running
// animation is canceled, all session-spawned effects are released, and
// gameplay resumes. Skip always succeeds regardless of current state; it is
// the guaranteed escape hatch out of an unresolvable input wait.
func (s *Scheduler) Skip(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.state.Terminal() {
		return
	}
	s.endLocked(ctx, Stopped, observability.OutcomeSkipped)
}

// Stop behaves like Skip; the two are distinguished only in telemetry.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.state.Terminal() {
		return
	}
	s.endLocked(ctx, Stopped, observability.OutcomeStopped)
}

// HandleInput offers a host input event to a pending input wait. It returns
// true if the event resolved the wait; dispatch resumes on the next Advance.
func (s *Scheduler) HandleInput(in action.Input) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session
	if sess == nil || sess.state != Playing {
		return false
	}
	g := sess.gate
	if g == nil || g.predicate == nil || !g.predicate(in) {
		return false
	}
	sess.gate = nil
	return true
}

// State returns the current session state, or Idle before the first Play.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Idle
	}
	return s.session.state
}

// CurrentTime returns the play cursor of the current session.
func (s *Scheduler) CurrentTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.cursor
}

// Duration returns the timeline duration of the current session.
func (s *Scheduler) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.cutscene.Duration
}

// IsPlaying reports whether a session is actively advancing.
func (s *Scheduler) IsPlaying() bool {
	return s.State() == Playing
}

// ProgressRatio returns cursor/duration in [0, 1].
func (s *Scheduler) ProgressRatio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.progressRatio()
}

// RunningCount returns the number of live running animation handles.
// After Stop or Skip this is always zero.
func (s *Scheduler) RunningCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return len(s.session.running)
}

// dispatchDue dispatches, in order, every unexecuted item with time <= target.
// A blocking outcome pins the cursor at the item's time and ends dispatch for
// this tick: a gating action pauses the whole timeline, not just its track.
func (s *Scheduler) dispatchDue(ctx context.Context, sess *session, target time.Duration) {
	for i := range sess.order {
		ref := sess.order[i]
		if ref.item.Time > target {
			break
		}
		if _, done := sess.executed[ref.item.ID]; done {
			continue
		}
		sess.executed[ref.item.ID] = struct{}{}

		outcome := s.invoke(ctx, sess, ref)
		switch outcome.Kind {
		case action.OutcomeBlocking:
			if ref.item.Time > sess.cursor {
				sess.cursor = ref.item.Time
			}
			sess.gate = &pendingWait{
				itemID:    ref.item.ID,
				remaining: outcome.Remaining,
				predicate: outcome.Predicate,
			}
			return
		case action.OutcomeRunning:
			if outcome.Handle != nil {
				sess.running = append(sess.running, runningEntry{ref: ref, handle: outcome.Handle})
			}
		}
	}
}

// invoke looks up and runs one handler. Failures are local and non-fatal:
// an unmatched action is skipped with a warning, and an error or panic from
// a handler is recovered here so a single broken effect cannot halt the
// sequence.
func (s *Scheduler) invoke(ctx context.Context, sess *session, ref dispatchRef) (out action.Outcome) {
	entry, ok := s.registry.Lookup(ref.kind, ref.item.Action)
	if !ok {
		s.logger.WarnContext(ctx, "no handler for action",
			"kind", string(ref.kind),
			"action", ref.item.Action,
			"item_id", ref.item.ID.String(),
		)
		observability.RecordItemDispatch(string(ref.kind), ref.item.Action, observability.StatusNotFound)
		return action.Done()
	}

	ctx, span := tracer.Start(ctx, "cutscene.dispatch")
	span.SetAttributes(
		attribute.String("item.id", ref.item.ID.String()),
		attribute.String("item.kind", string(ref.kind)),
		attribute.String("item.action", ref.item.Action),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "action handler panicked",
				"kind", string(ref.kind),
				"action", ref.item.Action,
				"item_id", ref.item.ID.String(),
				"panic", r,
			)
			span.SetStatus(codes.Error, "handler panic")
			observability.RecordItemDispatch(string(ref.kind), ref.item.Action, observability.StatusPanic)
			out = action.Done()
		}
	}()

	exec := s.execution(sess, ref.item, ref.item.Time)
	out, err := entry.Handler(ctx, exec)
	if err != nil {
		errutil.LogError(s.logger, "action handler failed", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observability.RecordItemDispatch(string(ref.kind), ref.item.Action, observability.StatusError)
		return action.Done()
	}

	observability.RecordItemDispatch(string(ref.kind), ref.item.Action, observability.StatusSuccess)
	return out
}

// pollRunning updates every live animation at the new cursor and drops the
// finished ones. A panicking handle is dropped without stalling the session.
func (s *Scheduler) pollRunning(ctx context.Context, sess *session) {
	if len(sess.running) == 0 {
		return
	}
	keep := sess.running[:0]
	for _, entry := range sess.running {
		exec := s.execution(sess, entry.ref.item, sess.cursor)
		if done := s.safeUpdate(ctx, entry, exec); !done {
			keep = append(keep, entry)
		}
	}
	sess.running = keep
}

func (s *Scheduler) safeUpdate(ctx context.Context, entry runningEntry, exec *action.Execution) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "running handle panicked",
				"action", entry.ref.item.Action,
				"item_id", entry.ref.item.ID.String(),
				"panic", r,
			)
			done = true
		}
	}()
	return entry.handle.Update(exec)
}

// cancelRunning cancels every live animation handle. Cancellation is total:
// the scheduler holds the registry of live handles precisely so cleanup never
// leaks a spawned effect.
func (s *Scheduler) cancelRunning(ctx context.Context, sess *session) {
	for _, entry := range sess.running {
		exec := s.execution(sess, entry.ref.item, sess.cursor)
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.ErrorContext(ctx, "running handle cancel panicked",
						"action", entry.ref.item.Action,
						"panic", r,
					)
				}
			}()
			entry.handle.Cancel(exec)
		}()
	}
	sess.running = nil
}

// endLocked finishes the session in the given terminal state: running
// handles are canceled, the gate is cleared, all spawned effects are swept,
// and gameplay resumes. Caller holds the lock and fires hooks afterwards.
func (s *Scheduler) endLocked(ctx context.Context, final State, outcome string) {
	sess := s.session
	s.cancelRunning(ctx, sess)
	sess.gate = nil
	sess.effects.ReleaseAll(s.caps)
	s.caps.ResumeGameplay()
	sess.state = final

	observability.RecordSessionEnd(outcome)
	s.logger.InfoContext(ctx, "cutscene ended",
		"cutscene", sess.cutscene.Name,
		"outcome", outcome,
		"cursor", sess.cursor.String(),
	)
}

func (s *Scheduler) execution(sess *session, item timeline.Item, cursor time.Duration) *action.Execution {
	return &action.Execution{
		Item:    item,
		Cursor:  cursor,
		Engine:  s.caps,
		Effects: sess.effects,
		Logger:  s.logger,
	}
}

func capDuration(d, limit time.Duration) time.Duration {
	if d > limit {
		return limit
	}
	return d
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

//go:build integration

package playback_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/stagehand/stagehand/internal/document"
	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/actions"
	"github.com/stagehand/stagehand/pkg/engine/enginetest"
	"github.com/stagehand/stagehand/pkg/playback"
)

const introYAML = `
name: village-intro
duration: 3s
metadata:
  chapter: "1"
tracks:
  - name: camera
    kind: camera
    items:
      - at: 0s
        action: pan
        duration: 1s
        args: {x: 200, y: 120, easing: outQuad}
      - at: 2s
        action: shake
        args: {intensity: 2}
  - name: dialog
    kind: text
    items:
      - at: 500ms
        action: show
        args: {text: "Welcome to the village."}
      - at: 2500ms
        action: hide
  - name: score
    kind: music
    items:
      - at: 0s
        action: play
        args: {track: village-theme, loop: true}
  - name: pacing
    kind: wait
    items:
      - at: 1500ms
        action: wait
        args: {duration: 250ms}
`

const promptYAML = `
name: prompt
duration: 10s
tracks:
  - name: dialog
    kind: text
    items:
      - at: 0s
        action: show
        args: {text: "Press enter to continue."}
  - name: pacing
    kind: wait
    items:
      - at: 1s
        action: waitForInput
        args: {key: enter}
`

// drive ticks the scheduler with a fixed dt until it reaches a terminal
// state or the tick budget runs out.
func drive(ctx context.Context, sched *playback.Scheduler, dt time.Duration, maxTicks int) {
	for range maxTicks {
		sched.Advance(ctx, dt)
		if sched.State().Terminal() {
			return
		}
	}
}

var _ = Describe("Cutscene playback", func() {
	var (
		ctx   context.Context
		rec   *enginetest.Recorder
		sched *playback.Scheduler
	)

	BeforeEach(func() {
		ctx = context.Background()
		rec = enginetest.NewRecorder()
		reg := action.NewRegistry()
		actions.RegisterBuiltins(reg)
		sched = playback.New(reg, rec.Capabilities())
	})

	Describe("a loaded document played to completion", func() {
		It("runs every track and restores gameplay", func() {
			cs, err := document.Parse([]byte(introYAML))
			Expect(err).NotTo(HaveOccurred())
			Expect(sched.Play(ctx, cs)).To(Succeed())

			drive(ctx, sched, 16*time.Millisecond, 1000)

			Expect(sched.State()).To(Equal(playback.Completed))
			Expect(rec.CallsFor("PlayMusic")).To(HaveLen(1))
			Expect(rec.CallsFor("ShakeCamera")).To(HaveLen(1))
			Expect(rec.CallsFor("ShowText")).ToNot(BeEmpty())
			Expect(rec.CallsFor("HideText")).To(HaveLen(1))
			Expect(rec.CallsFor("PanCamera")).ToNot(BeEmpty(), "the pan tween samples across ticks")
			Expect(rec.CallsFor("PauseGameplay")).To(HaveLen(1))
			Expect(rec.CallsFor("ResumeGameplay")).To(HaveLen(1))

			// No stop item in the score track; teardown sweeps the music.
			Expect(rec.CallsFor("StopMusic")).To(HaveLen(1))
			Expect(sched.RunningCount()).To(BeZero())
		})

		It("accounts the mid-scene wait against wall time", func() {
			cs, err := document.Parse([]byte(introYAML))
			Expect(err).NotTo(HaveOccurred())
			Expect(sched.Play(ctx, cs)).To(Succeed())

			sched.Advance(ctx, 1600*time.Millisecond)
			Expect(sched.CurrentTime()).To(Equal(1500 * time.Millisecond))

			sched.Advance(ctx, 250*time.Millisecond)
			Expect(sched.CurrentTime()).To(Equal(1750 * time.Millisecond))
		})
	})

	Describe("an input-gated cutscene", func() {
		It("freezes until the matching key arrives", func() {
			cs, err := document.Parse([]byte(promptYAML))
			Expect(err).NotTo(HaveOccurred())
			Expect(sched.Play(ctx, cs)).To(Succeed())

			sched.Advance(ctx, 2*time.Second)
			sched.Advance(ctx, time.Hour)
			Expect(sched.CurrentTime()).To(Equal(time.Second))

			Expect(sched.HandleInput(action.Input{Key: "escape"})).To(BeFalse())
			Expect(sched.HandleInput(action.Input{Key: "enter"})).To(BeTrue())

			drive(ctx, sched, time.Second, 20)
			Expect(sched.State()).To(Equal(playback.Completed))
		})

		It("can always be skipped out of the gate", func() {
			cs, err := document.Parse([]byte(promptYAML))
			Expect(err).NotTo(HaveOccurred())
			Expect(sched.Play(ctx, cs)).To(Succeed())

			sched.Advance(ctx, 2*time.Second)
			sched.Skip(ctx)

			Expect(sched.State()).To(Equal(playback.Stopped))
			Expect(rec.CallsFor("HideText")).To(HaveLen(1), "spawned dialog is swept")
			Expect(rec.CallsFor("ResumeGameplay")).To(HaveLen(1))
		})
	})

	Describe("seeking", func() {
		It("jumps without replaying earlier effects", func() {
			cs, err := document.Parse([]byte(introYAML))
			Expect(err).NotTo(HaveOccurred())
			Expect(sched.Play(ctx, cs)).To(Succeed())

			Expect(sched.Seek(ctx, 2*time.Second)).To(Succeed())
			drive(ctx, sched, 100*time.Millisecond, 50)

			Expect(sched.State()).To(Equal(playback.Completed))
			Expect(rec.CallsFor("PlayMusic")).To(BeEmpty(), "item before the seek target never fires")
			Expect(rec.CallsFor("ShakeCamera")).To(HaveLen(1), "item at the seek target fires")
		})
	})
})

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/stagehand/stagehand/internal/config"
	"github.com/stagehand/stagehand/internal/document"
	"github.com/stagehand/stagehand/internal/logging"
	"github.com/stagehand/stagehand/internal/observability"
	"github.com/stagehand/stagehand/pkg/action"
	"github.com/stagehand/stagehand/pkg/actions"
	"github.com/stagehand/stagehand/pkg/playback"
)

// NewPlayCmd creates the play subcommand.
func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <cutscene.yaml>",
		Short: "Play a cutscene file against the terminal engine",
		Long: `Play loads a cutscene document and drives it with a fixed tick loop.
Engine effects are rendered as terminal output. While playing, type a line to
answer a waitForInput gate, or one of: pause, resume, skip.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlay,
	}
	// Flag defaults mirror config.Default(); posflag merges unchanged flag
	// defaults for keys the config file does not set.
	cmd.Flags().String("log.format", "text", "log format: json or text")
	cmd.Flags().String("log.level", "info", "log level: debug, info, warn, error")
	cmd.Flags().Bool("metrics.enabled", false, "serve Prometheus metrics")
	cmd.Flags().String("metrics.addr", "127.0.0.1:9100", "metrics listen address")
	cmd.Flags().String("playback.tick", "16ms", "advance interval, e.g. 16ms")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logging.SetDefault("stagehand", version, cfg.Log.Format, cfg.Log.Level)

	cs, err := document.Load(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.Enabled {
		obs := observability.NewServer(cfg.Metrics.Addr, func() bool { return true })
		if _, err := obs.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = obs.Stop(shutdownCtx)
		}()
	}

	reg := action.NewRegistry()
	actions.RegisterBuiltins(reg)

	out := cmd.OutOrStdout()
	done := make(chan struct{})
	sched := playback.New(reg, newConsoleCapabilities(out),
		playback.WithOnComplete(func() { close(done) }),
	)

	if err := sched.Play(ctx, cs); err != nil {
		return err
	}
	fmt.Fprintf(out, "playing %q (%s)\n", cs.Name, cs.Duration)

	// Terminal stand-in for the host's input events. The goroutine blocks on
	// stdin and is abandoned at exit.
	go func() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			switch line := scanner.Text(); line {
			case "skip":
				sched.Skip(ctx)
			case "pause":
				_ = sched.Pause()
			case "resume":
				_ = sched.Resume()
			default:
				sched.HandleInput(action.Input{Key: line})
			}
		}
	}()

	tick := cfg.Playback.TickInterval()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sched.Advance(ctx, tick)
			if sched.State().Terminal() {
				fmt.Fprintf(out, "cutscene %s\n", sched.State())
				return nil
			}
		case <-done:
			fmt.Fprintln(out, "cutscene completed")
			return nil
		case <-ctx.Done():
			sched.Stop(context.WithoutCancel(ctx))
			fmt.Fprintln(out, "cutscene stopped")
			return nil
		}
	}
}

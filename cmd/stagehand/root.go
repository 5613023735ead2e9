// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the stagehand CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stagehand",
		Short: "Stagehand - a cutscene playback engine",
		Long: `Stagehand plays declarative, multi-track cutscene timelines with
correct ordering, pausing, seeking, skipping, and cancellation semantics.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewPlayCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInspectCmd())

	return cmd
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stagehand/stagehand/internal/document"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <cutscene.yaml>",
		Short: "Validate a cutscene file without playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := document.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tracks, %d items, %s)\n",
				args[0], len(cs.Tracks), cs.ItemCount(), cs.Duration)
			return nil
		},
	}
}

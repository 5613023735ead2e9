// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package main

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/stagehand/stagehand/internal/document"
	"github.com/stagehand/stagehand/pkg/timeline"
)

// NewInspectCmd creates the inspect subcommand.
func NewInspectCmd() *cobra.Command {
	var match string

	cmd := &cobra.Command{
		Use:   "inspect <cutscene.yaml>",
		Short: "Print a cutscene's items in dispatch order",
		Long: `Inspect lists every item in the order the scheduler would dispatch it.
Use --match to filter by a "kind/action" glob, e.g. --match "camera/*".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := document.Load(args[0])
			if err != nil {
				return err
			}

			var filter glob.Glob
			if match != "" {
				filter, err = glob.Compile(match)
				if err != nil {
					return fmt.Errorf("invalid --match pattern %q: %w", match, err)
				}
			}

			type row struct {
				trackIndex int
				kind       timeline.TrackKind
				item       timeline.Item
			}
			var rows []row
			for ti, track := range cs.Tracks {
				for _, item := range track.Items {
					rows = append(rows, row{trackIndex: ti, kind: track.Kind, item: item})
				}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				a, b := rows[i], rows[j]
				if a.item.Time != b.item.Time {
					return a.item.Time < b.item.Time
				}
				if a.trackIndex != b.trackIndex {
					return a.trackIndex < b.trackIndex
				}
				return a.item.ID.Compare(b.item.ID) < 0
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", cs.Name, cs.Duration)
			for _, r := range rows {
				key := string(r.kind) + "/" + r.item.Action
				if filter != nil && !filter.Match(key) {
					continue
				}
				fmt.Fprintf(out, "%10s  %-20s", r.item.Time, key)
				if r.item.Duration > 0 {
					fmt.Fprintf(out, "  dur=%s", r.item.Duration)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", `filter items by "kind/action" glob`)
	return cmd
}

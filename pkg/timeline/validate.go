// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package timeline

import (
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Error codes for document validation failures.
const (
	CodeInvalidDuration  = "INVALID_DURATION"
	CodeUnknownTrackKind = "UNKNOWN_TRACK_KIND"
	CodeItemOutOfRange   = "ITEM_OUT_OF_RANGE"
	CodeDuplicateItem    = "DUPLICATE_ITEM"
	CodeMissingAction    = "MISSING_ACTION"
)

// Validate checks the document invariants a playback session relies on:
// a positive duration, every item inside [0, duration], unique item IDs,
// known track kinds, and a non-empty action name per item. Items scheduled
// past the cutscene duration are rejected here rather than silently dropped
// at runtime.
func (c *Cutscene) Validate() error {
	if c.Duration <= 0 {
		return oops.Code(CodeInvalidDuration).
			With("cutscene", c.Name).
			With("duration", c.Duration.String()).
			Errorf("cutscene duration must be positive")
	}

	seen := make(map[ulid.ULID]struct{}, c.ItemCount())
	for _, track := range c.Tracks {
		if !track.Kind.Valid() {
			return oops.Code(CodeUnknownTrackKind).
				With("cutscene", c.Name).
				With("track", track.Name).
				With("kind", string(track.Kind)).
				Errorf("unknown track kind %q", track.Kind)
		}
		for _, item := range track.Items {
			if item.Action == "" {
				return oops.Code(CodeMissingAction).
					With("track", track.Name).
					With("item_id", item.ID.String()).
					Errorf("item has no action name")
			}
			if item.Time < 0 || item.Time > c.Duration {
				return oops.Code(CodeItemOutOfRange).
					With("track", track.Name).
					With("item_id", item.ID.String()).
					With("time", item.Time.String()).
					With("duration", c.Duration.String()).
					Errorf("item time %s outside [0, %s]", item.Time, c.Duration)
			}
			if _, dup := seen[item.ID]; dup {
				return oops.Code(CodeDuplicateItem).
					With("track", track.Name).
					With("item_id", item.ID.String()).
					Errorf("duplicate item ID %s", item.ID)
			}
			seen[item.ID] = struct{}{}
		}
	}
	return nil
}

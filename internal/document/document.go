// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

// Package document is the host-side cutscene import layer: it reads YAML
// cutscene files, validates them against a generated JSON Schema, and maps
// them onto the timeline model. The playback core never imports this
// package; it only ever sees a validated timeline.Cutscene.
package document

import (
	"time"

	"github.com/samber/oops"

	"github.com/stagehand/stagehand/pkg/timeline"
)

// Document is the on-disk shape of a cutscene file.
type Document struct {
	Name     string            `yaml:"name" json:"name" jsonschema:"required"`
	Duration string            `yaml:"duration" json:"duration" jsonschema:"required,description=Total timeline length as a Go duration string"`
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Tracks   []TrackDoc        `yaml:"tracks" json:"tracks" jsonschema:"required"`
}

// TrackDoc is one lane of the document.
type TrackDoc struct {
	Name  string    `yaml:"name,omitempty" json:"name,omitempty"`
	Kind  string    `yaml:"kind" json:"kind" jsonschema:"required,enum=camera,enum=text,enum=sprite,enum=music,enum=wait"`
	Items []ItemDoc `yaml:"items" json:"items"`
}

// ItemDoc is one timed action.
type ItemDoc struct {
	At       string         `yaml:"at" json:"at" jsonschema:"required,description=Offset from the cutscene start as a Go duration string"`
	Action   string         `yaml:"action" json:"action" jsonschema:"required"`
	Duration string         `yaml:"duration,omitempty" json:"duration,omitempty" jsonschema:"description=Sub-duration for animated or blocking actions"`
	Args     map[string]any `yaml:"args,omitempty" json:"args,omitempty"`
}

// Error codes for document import failures.
const (
	CodeBadFile     = "BAD_FILE"
	CodeBadYAML     = "BAD_YAML"
	CodeBadSchema   = "SCHEMA_VIOLATION"
	CodeBadDuration = "BAD_DURATION"
)

// ToCutscene maps the document onto the timeline model and validates the
// result. IDs are generated fresh per load; item identity is only meaningful
// within one playback session.
func (d *Document) ToCutscene() (*timeline.Cutscene, error) {
	total, err := parseDuration(d.Duration)
	if err != nil {
		return nil, oops.Code(CodeBadDuration).
			With("field", "duration").
			With("value", d.Duration).
			Wrap(err)
	}

	cs := &timeline.Cutscene{
		ID:       timeline.NewID(),
		Name:     d.Name,
		Duration: total,
		Metadata: d.Metadata,
	}

	for _, td := range d.Tracks {
		track := timeline.Track{
			ID:   timeline.NewID(),
			Name: td.Name,
			Kind: timeline.TrackKind(td.Kind),
		}
		for _, id := range td.Items {
			at, err := parseDuration(id.At)
			if err != nil {
				return nil, oops.Code(CodeBadDuration).
					With("track", td.Name).
					With("field", "at").
					With("value", id.At).
					Wrap(err)
			}
			var dur time.Duration
			if id.Duration != "" {
				dur, err = parseDuration(id.Duration)
				if err != nil {
					return nil, oops.Code(CodeBadDuration).
						With("track", td.Name).
						With("field", "duration").
						With("value", id.Duration).
						Wrap(err)
				}
			}
			track.Items = append(track.Items, timeline.Item{
				ID:       timeline.NewID(),
				Time:     at,
				Action:   id.Action,
				Args:     timeline.Args(id.Args),
				Duration: dur,
			})
		}
		cs.Tracks = append(cs.Tracks, track)
	}

	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return d, nil
}

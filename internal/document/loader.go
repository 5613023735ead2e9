// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package document

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/stagehand/stagehand/pkg/timeline"
)

// Parse reads a cutscene document from raw YAML bytes: schema validation,
// decode, and mapping onto the timeline model.
func Parse(data []byte) (*timeline.Cutscene, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, oops.Code(CodeBadSchema).Wrap(err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oops.Code(CodeBadYAML).Wrap(err)
	}

	return doc.ToCutscene()
}

// Load reads a cutscene document from a YAML file.
func Load(path string) (*timeline.Cutscene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator's command line
	if err != nil {
		return nil, oops.Code(CodeBadFile).With("path", path).Wrap(err)
	}
	return Parse(data)
}

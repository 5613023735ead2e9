// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package action

import (
	"log/slog"
	"sync"

	"github.com/stagehand/stagehand/pkg/timeline"
)

type key struct {
	kind timeline.TrackKind
	name string
}

// Registry maps (track kind, action name) pairs to handlers.
// It is thread-safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	entries map[key]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[key]Entry),
	}
}

// Register adds a handler to the registry. If the (kind, action) pair is
// already registered, the previous handler is overwritten and a warning is
// logged: last registration wins.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{kind: entry.Kind, name: entry.Action}
	if existing, ok := r.entries[k]; ok {
		slog.Warn("action conflict: overwriting existing handler",
			"kind", string(entry.Kind),
			"action", entry.Action,
			"previous_source", existing.Source,
			"new_source", entry.Source)
	}
	r.entries[k] = entry
}

// Lookup retrieves the handler for a (kind, action) pair.
func (r *Registry) Lookup(kind timeline.TrackKind, name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key{kind: kind, name: name}]
	return entry, ok
}

// All returns all registered entries. The returned slice is a copy and safe
// to modify.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries
}

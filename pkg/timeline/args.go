// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package timeline

import "time"

// Args is the open property bag attached to an item. Keys are validated only
// informally by the handler that consumes them; missing or mistyped keys fall
// back to the default supplied by the accessor.
type Args map[string]any

// String returns the string value for key, or def if absent or mistyped.
func (a Args) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the boolean value for key, or def if absent or mistyped.
func (a Args) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the numeric value for key, or def if absent or mistyped.
// Integer values are widened; YAML and JSON decoders disagree on the concrete
// numeric type they produce, so all of them are accepted.
func (a Args) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return def
	}
}

// Duration returns the duration value for key, or def if absent or mistyped.
// Accepted forms: a time.Duration, a Go duration string ("250ms", "1.5s"),
// or a bare number interpreted as milliseconds.
func (a Args) Duration(key string, def time.Duration) time.Duration {
	switch v := a[key].(type) {
	case time.Duration:
		return v
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return def
		}
		return d
	case float64:
		return time.Duration(v * float64(time.Millisecond))
	case int:
		return time.Duration(v) * time.Millisecond
	case int64:
		return time.Duration(v) * time.Millisecond
	default:
		return def
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package playback

// State is the lifecycle state of a playback session.
type State uint8

// Session states. Completed and Stopped are terminal.
const (
	Idle State = iota
	Playing
	Paused
	Completed
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a session.
func (s State) Terminal() bool {
	return s == Completed || s == Stopped
}

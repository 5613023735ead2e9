// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package playback

import "github.com/samber/oops"

// Error codes for session control failures.
const (
	CodeNoSession   = "NO_SESSION"
	CodeBadState    = "BAD_STATE"
	CodeNilCutscene = "NIL_CUTSCENE"
)

// ErrNoSession creates an error for a control call with no live session.
func ErrNoSession(op string) error {
	return oops.Code(CodeNoSession).
		With("op", op).
		Errorf("no active playback session")
}

// ErrBadState creates an error for a control call in the wrong state.
func ErrBadState(op string, state State) error {
	return oops.Code(CodeBadState).
		With("op", op).
		With("state", state.String()).
		Errorf("cannot %s while %s", op, state)
}

// ErrNilCutscene creates an error for Play called without a document.
func ErrNilCutscene() error {
	return oops.Code(CodeNilCutscene).
		Errorf("cutscene document is nil")
}

package domain

import "errors"

var (
	// ErrValidation indicates malformed input (missing required field,
	// end <= start, non-uuid id). Always raised before any store mutation.
	ErrValidation = errors.New("validation failed")

	// ErrTimerConflict indicates a timer is already running for the
	// (user, workspace) pair. Callers can remediate by stopping it first.
	ErrTimerConflict = errors.New("active timer already exists")

	// ErrNotFound indicates the referenced entity is absent or already in an
	// incompatible state (stopping an already-stopped entry). Safe to retry
	// or ignore.
	ErrNotFound = errors.New("not found")

	// ErrStore indicates the underlying persistence call failed for a reason
	// not otherwise classified.
	ErrStore = errors.New("store failure")
)

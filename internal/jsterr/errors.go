// Package jsterr defines the sentinel errors shared across the jst
// packages. Library code always returns one of these (wrapped with
// fmt.Errorf and %w); only cmd/ and main.go log or exit on them.
package jsterr

import "errors"

var (
	// ErrInvalidCoordinate is returned when a breakpoint, position, or
	// index falls outside the bounds it is being applied against.
	ErrInvalidCoordinate = errors.New("jst: invalid coordinate")

	// ErrDomainMismatch is returned when two coverage bitmaps with
	// different domain sizes are combined.
	ErrDomainMismatch = errors.New("jst: coverage domain mismatch")

	// ErrInvariantViolated marks a broken internal invariant. Per
	// spec.md §7 these are fatal, non-recoverable bugs, so callers
	// should treat a panic carrying this error as a crash, not a
	// retryable condition.
	ErrInvariantViolated = errors.New("jst: invariant violated")

	// ErrMalformedContainer is returned while decoding a binary
	// container that fails a structural check (bad magic, truncated
	// section, CRC mismatch).
	ErrMalformedContainer = errors.New("jst: malformed container")

	// ErrEmptyEdit is returned when a variant or journal record would
	// describe a no-op edit (zero span and zero-length alt).
	ErrEmptyEdit = errors.New("jst: empty edit")
)

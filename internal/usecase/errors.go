package usecase

import "errors"

// Error kinds surfaced to handlers. Services wrap these with context via
// fmt.Errorf("...: %w", Err...); handlers dispatch on errors.Is.
var (
	// ErrValidation marks malformed or missing input. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a lost inventory race or a duplicate in-flight
	// payment. Callers should re-read state before retrying.
	ErrConflict = errors.New("conflict")

	// ErrUpstream marks a gateway that is unreachable or answered with a
	// non-success status. Safe to retry with backoff.
	ErrUpstream = errors.New("upstream gateway error")
)

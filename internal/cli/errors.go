// Package cli implements the command-line interface.
package cli

// Machine-readable error codes carried in JSON envelopes. Scripts key off
// these, so renaming one is a breaking change.
const (
	ErrStoreNotFound = "STORE_NOT_FOUND"
	ErrStoreCorrupt  = "STORE_CORRUPT"
	ErrTrackNotFound = "TRACK_NOT_FOUND"

	ErrInvalidInput = "INVALID_INPUT"

	ErrInternal = "INTERNAL_ERROR"
)

// Codes for non-fatal warnings.
const (
	WarnTrackOverwritten = "TRACK_OVERWRITTEN"
)

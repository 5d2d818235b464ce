package cli

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/trackfile/internal/store"
)

// resolveStorePath resolves a store argument against the active store
// directory, appending the store extension when missing.
func resolveStorePath(arg string) string {
	return store.ResolvePath(arg, getStoreDir())
}

// handleStoreError maps store sentinel errors to stable CLI error codes.
// The returned error follows handleError conventions: nil in JSON mode
// after the envelope has been written.
func handleStoreError(storeArg string, err error) error {
	switch {
	case errors.Is(err, store.ErrStoreNotFound):
		return handleError(ErrStoreNotFound, err,
			fmt.Sprintf("Run 'trk path %s' to see where the store is expected", storeArg))
	case errors.Is(err, store.ErrStoreCorrupt):
		return handleError(ErrStoreCorrupt, err,
			"Inspect the file; expected a 'version: 1' document with a tracks list")
	case errors.Is(err, store.ErrTrackNotFound):
		return handleError(ErrTrackNotFound, err,
			fmt.Sprintf("Run 'trk list %s' to see track names", storeArg))
	default:
		return handleError(ErrInternal, err, "")
	}
}

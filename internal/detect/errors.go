package detect

import "errors"

// Resolution failures abort the invocation and surface to the caller as
// errors; they are never collapsed into the 0 ("no group") result.
var (
	// ErrNoFocusedWindow means the snapshot flagged no window as focused.
	ErrNoFocusedWindow = errors.New("no focused window found")

	// ErrNoPopupParent means the active window looked like a browser popup
	// but no parent browser window sat above it.
	ErrNoPopupParent = errors.New("no parent browser window found for popup")
)

package platform

import (
	"image"

	"github.com/tabstrip/hover-cli/internal/model"
)

// CursorLocator queries the mouse cursor's absolute screen position.
type CursorLocator interface {
	CursorPosition() (image.Point, error)
}

// WindowLister enumerates windows and reports the OS-level active window.
type WindowLister interface {
	// ListWindows returns a snapshot of all visible top-level windows.
	ListWindows() ([]model.Window, error)

	// ActiveWindow returns the current foreground window descriptor.
	ActiveWindow() (model.ActiveWindow, error)
}

// Capturer grabs window pixels.
type Capturer interface {
	// CaptureWindow captures the window's content as an RGBA image. The
	// capture may cover more than the tab strip; callers consult only the
	// rows they need.
	CaptureWindow(windowID int) (*image.RGBA, error)
}

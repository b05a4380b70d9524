//go:build windows

package win

import (
	"fmt"
	"image"
	"unsafe"
)

type point struct {
	X, Y int32
}

// CursorPosition returns the cursor's absolute screen coordinates.
func (d *Desktop) CursorPosition() (image.Point, error) {
	var pt point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return image.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return image.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

//go:build windows

package win

import (
	"fmt"
	"image"
	"unsafe"
)

const srccopy = 0x00CC0020

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

// CaptureWindow copies the window's current pixels into an RGBA image via
// BitBlt into a top-down 32-bpp DIB.
func (d *Desktop) CaptureWindow(windowID int) (*image.RGBA, error) {
	hwnd := uintptr(windowID)

	var r rect
	if ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
		return nil, fmt.Errorf("GetWindowRect: %w", err)
	}
	width := int(r.Right - r.Left)
	height := int(r.Bottom - r.Top)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window %d has empty bounds", windowID)
	}

	hdcWin, _, err := procGetWindowDC.Call(hwnd)
	if hdcWin == 0 {
		return nil, fmt.Errorf("GetWindowDC: %w", err)
	}
	defer procReleaseDC.Call(hwnd, hdcWin)

	hdcMem, _, err := procCreateCompatibleDC.Call(hdcWin)
	if hdcMem == 0 {
		return nil, fmt.Errorf("CreateCompatibleDC: %w", err)
	}
	defer procDeleteDC.Call(hdcMem)

	bmp, _, err := procCreateCompatibleBitmap.Call(hdcWin, uintptr(width), uintptr(height))
	if bmp == 0 {
		return nil, fmt.Errorf("CreateCompatibleBitmap: %w", err)
	}
	defer procDeleteObject.Call(bmp)

	old, _, _ := procSelectObject.Call(hdcMem, bmp)
	defer procSelectObject.Call(hdcMem, old)

	if ret, _, err := procBitBlt.Call(hdcMem, 0, 0, uintptr(width), uintptr(height), hdcWin, 0, 0, srccopy); ret == 0 {
		return nil, fmt.Errorf("BitBlt: %w", err)
	}

	info := bitmapInfo{Header: bitmapInfoHeader{
		Width:    int32(width),
		Height:   -int32(height), // negative height = top-down rows
		Planes:   1,
		BitCount: 32,
	}}
	info.Header.Size = uint32(unsafe.Sizeof(info.Header))

	pixels := make([]byte, width*height*4)
	ret, _, err := procGetDIBits.Call(
		hdcMem, bmp, 0, uintptr(height),
		uintptr(unsafe.Pointer(&pixels[0])),
		uintptr(unsafe.Pointer(&info)),
		0, // DIB_RGB_COLORS
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits: %w", err)
	}

	// GetDIBits fills BGRA; swap to RGBA.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(pixels); i += 4 {
		img.Pix[i+0] = pixels[i+2]
		img.Pix[i+1] = pixels[i+1]
		img.Pix[i+2] = pixels[i+0]
		img.Pix[i+3] = 0xFF
	}
	return img, nil
}

package detect

import "image"

// Frame wraps a captured window image with bounds-checked RGB sampling.
// It is owned by a single invocation and discarded after scanning.
type Frame struct {
	img *image.RGBA
}

// NewFrame wraps an RGBA capture.
func NewFrame(img *image.RGBA) *Frame { return &Frame{img: img} }

// Width returns the capture width in pixels.
func (f *Frame) Width() int { return f.img.Rect.Dx() }

// Height returns the capture height in pixels.
func (f *Frame) Height() int { return f.img.Rect.Dy() }

// Sample returns the packed RGB value at (x, y), or false when the
// coordinate lies outside the capture.
func (f *Frame) Sample(x, y int) (RGB, bool) {
	if x < 0 || y < 0 || x >= f.Width() || y >= f.Height() {
		return 0, false
	}
	i := f.img.PixOffset(f.img.Rect.Min.X+x, f.img.Rect.Min.Y+y)
	r := uint32(f.img.Pix[i])
	g := uint32(f.img.Pix[i+1])
	b := uint32(f.img.Pix[i+2])
	return RGB(r<<16 | g<<8 | b), true
}

// Image exposes the underlying capture for debug rendering.
func (f *Frame) Image() *image.RGBA { return f.img }

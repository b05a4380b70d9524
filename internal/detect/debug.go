package detect

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Annotation colors.
var (
	scanLineColor = color.RGBA{R: 255, A: 255}
	cursorColor   = color.RGBA{G: 255, A: 255}
	spanColor     = color.RGBA{B: 255, A: 255}
	labelColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const cursorArm = 5 // half-length of the cursor cross

// DebugRenderer writes annotated copies of captured strips for visual
// debugging: the scan row as a solid line, the cursor as a cross, each
// span's boundary columns as vertical marks, and the group ordinal at each
// span's center. It is diagnostic only; callers treat its failures as
// log-worthy, never fatal.
type DebugRenderer struct {
	Dir string
}

// NewDebugRenderer writes images into dir ("." when empty).
func NewDebugRenderer(dir string) *DebugRenderer {
	if dir == "" {
		dir = "."
	}
	return &DebugRenderer{Dir: dir}
}

// Render persists a timestamped PNG of the annotated strip and returns its path.
func (r *DebugRenderer) Render(frame *Frame, scanY int, cursor image.Point, spans []Span, stripHeight int) (string, error) {
	width := frame.Width()
	height := stripHeight
	if frame.Height() < height {
		height = frame.Height()
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), frame.Image(), frame.Image().Rect.Min, draw.Src)

	if scanY < height {
		for x := 0; x < width; x++ {
			img.Set(x, scanY, scanLineColor)
		}
	}

	drawCursorCross(img, cursor)

	for i, s := range spans {
		drawColumn(img, s.StartX, spanColor)
		drawColumn(img, s.EndX, spanColor)
		drawLabel(img, fmt.Sprintf("%d", i+1), (s.StartX+s.EndX)/2, height/2)
	}

	name := fmt.Sprintf("hover_%s.png", time.Now().Format("20060102_150405"))
	path := filepath.Join(r.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}

func drawCursorCross(img *image.RGBA, p image.Point) {
	b := img.Bounds()
	for x := p.X - cursorArm; x <= p.X+cursorArm; x++ {
		if (image.Point{X: x, Y: p.Y}).In(b) {
			img.Set(x, p.Y, cursorColor)
		}
	}
	for y := p.Y - cursorArm; y <= p.Y+cursorArm; y++ {
		if (image.Point{X: p.X, Y: y}).In(b) {
			img.Set(p.X, y, cursorColor)
		}
	}
}

func drawColumn(img *image.RGBA, x int, c color.Color) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(x, y, c)
	}
}

// drawLabel draws text centered at (x, y) using the basic 7x13 face.
func drawLabel(img *image.RGBA, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((x - len(text)*7/2) * 64),
			Y: fixed.Int26_6((y + 13/2) * 64),
		},
	}
	d.DrawString(text)
}

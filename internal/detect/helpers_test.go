package detect

import (
	"image"
	"image/color"
	"os"

	"github.com/tabstrip/hover-cli/internal/config"
)

// Colors used across the package tests. aliased is deliberately outside the
// catalog to stand in for anti-aliased edge pixels.
const (
	bgColor = RGB(0x202020)
	pink    = RGB(0xEE5FB7)
	blue    = RGB(0x4A89BA)
	aliased = RGB(0x123456)
)

func testConfig() config.Config {
	return config.Config{
		StripHeight:     60,
		ProximityRadius: 2,
		Background:      config.HexColor(bgColor),
		Targets:         []config.HexColor{config.HexColor(pink), config.HexColor(blue)},
		Browsers:        []string{"edge", "chrome"},
		PopupProcesses:  []string{"msedge"},
		PopupMaxYOffset: 50,
		PopupXTolerance: 50,
	}
}

// band paints [start, end) with a color on the scan row.
type band struct {
	start, end int
	color      RGB
}

// makeImage paints a width×height background image with the given bands on
// row scanY.
func makeImage(width, height, scanY int, bands []band) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			setRGB(img, x, y, bgColor)
		}
	}
	for _, b := range bands {
		for x := b.start; x < b.end && x < width; x++ {
			setRGB(img, x, scanY, b.color)
		}
	}
	return img
}

func makeFrame(width, height, scanY int, bands []band) *Frame {
	return NewFrame(makeImage(width, height, scanY, bands))
}

func setRGB(img *image.RGBA, x, y int, c RGB) {
	img.Set(x, y, color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255})
}

func filesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

package detect

import "github.com/tabstrip/hover-cli/internal/config"

// RGB is a 24-bit packed color sample; alpha is discarded at sampling time.
type RGB uint32

// Class is the catalog classification of one pixel sample.
type Class int

const (
	// ClassIgnored marks samples outside the catalog, typically
	// anti-aliased edge pixels. Ignored samples never drive scanner
	// transitions and never update the last relevant color.
	ClassIgnored Class = iota
	// ClassBackground is the tab-strip background color.
	ClassBackground
	// ClassTarget is one of the tab-group band colors.
	ClassTarget
)

// Palette is the fixed color catalog: one background color and a set of
// target colors, matched by exact equality.
type Palette struct {
	background RGB
	targets    map[RGB]struct{}
}

// NewPalette builds a palette from a config catalog.
func NewPalette(cfg config.Config) Palette {
	p := Palette{
		background: RGB(cfg.Background),
		targets:    make(map[RGB]struct{}, len(cfg.Targets)),
	}
	for _, t := range cfg.Targets {
		p.targets[RGB(t)] = struct{}{}
	}
	return p
}

// Background returns the background color.
func (p Palette) Background() RGB { return p.background }

// Classify maps a sample to its catalog class.
func (p Palette) Classify(c RGB) Class {
	if c == p.background {
		return ClassBackground
	}
	if _, ok := p.targets[c]; ok {
		return ClassTarget
	}
	return ClassIgnored
}

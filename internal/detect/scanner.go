package detect

// Span is a detected colored band on the scan row. StartX < EndX always
// holds: a span is only recorded once its end column is known.
type Span struct {
	StartX int
	EndX   int
}

// ScanResult carries the group ordinal under the cursor (0 = no group) and
// every span discovered before the scan settled, for debug rendering.
type ScanResult struct {
	Index uint32
	Spans []Span
}

// Scanner walks one pixel row of a capture and assigns 1-based ordinals to
// contiguous target-color bands, left to right.
type Scanner struct {
	Palette Palette
	ScanY   int // fixed scan row, half the strip height
	Radius  int // proximity pre-check radius around the cursor column
}

// NewScanner builds a scanner for the given palette and geometry.
func NewScanner(p Palette, scanY, radius int) *Scanner {
	return &Scanner{Palette: p, ScanY: scanY, Radius: radius}
}

// Scan reports which group band contains cursorX on the scan row.
//
// A cheap proximity pre-check rejects cursors over plain background without
// walking the row. The full scan then runs left to right with the open span
// as its state: nil between bands, non-nil with the start column inside one.
// Samples outside the catalog are skipped entirely, so an anti-aliased run
// neither splits a band nor fabricates a transition.
func (s *Scanner) Scan(frame *Frame, cursorX int) ScanResult {
	if !s.nearTarget(frame, cursorX) {
		return ScanResult{}
	}

	var (
		index uint32
		open  *Span
		spans []Span
		last  = s.Palette.Background() // last relevant (catalog) color seen
	)

	for x := 0; x < frame.Width(); x++ {
		sample, ok := frame.Sample(x, s.ScanY)
		if !ok {
			continue
		}
		class := s.Palette.Classify(sample)
		if class == ClassIgnored {
			continue
		}

		if open == nil && s.Palette.Classify(last) == ClassBackground && class == ClassTarget {
			// Background → target: a new band starts here.
			index++
			open = &Span{StartX: x}
			if cursorX <= x {
				// The cursor sits in the gap before this band (or on
				// its first column); the proximity hit was a neighbor,
				// not a hover.
				return ScanResult{Spans: spans}
			}
		} else if open != nil && s.Palette.Classify(last) == ClassTarget && class == ClassBackground {
			// Target → background: the open band closes here.
			open.EndX = x
			spans = append(spans, *open)
			open = nil
			if cursorX <= x {
				return ScanResult{Index: index, Spans: spans}
			}
		}
		last = sample
	}

	if open != nil {
		// Trailing band reaching the right edge of the capture.
		open.EndX = frame.Width()
		spans = append(spans, *open)
		if cursorX < open.EndX {
			return ScanResult{Index: index, Spans: spans}
		}
	}
	return ScanResult{Spans: spans}
}

// nearTarget reports whether any sample within Radius columns of cursorX on
// the scan row is a target color.
func (s *Scanner) nearTarget(frame *Frame, cursorX int) bool {
	for dx := -s.Radius; dx <= s.Radius; dx++ {
		if sample, ok := frame.Sample(cursorX+dx, s.ScanY); ok {
			if s.Palette.Classify(sample) == ClassTarget {
				return true
			}
		}
	}
	return false
}

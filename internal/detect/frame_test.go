package detect

import "testing"

func TestFrame_Sample(t *testing.T) {
	frame := makeFrame(20, 10, 5, []band{{3, 7, pink}})

	if got, ok := frame.Sample(4, 5); !ok || got != pink {
		t.Errorf("Sample(4, 5) = %#06x, %v; want %#06x, true", uint32(got), ok, uint32(pink))
	}
	if got, ok := frame.Sample(0, 0); !ok || got != bgColor {
		t.Errorf("Sample(0, 0) = %#06x, %v; want background, true", uint32(got), ok)
	}

	outOfBounds := []struct{ x, y int }{
		{-1, 5}, {20, 5}, {4, -1}, {4, 10},
	}
	for _, p := range outOfBounds {
		if _, ok := frame.Sample(p.x, p.y); ok {
			t.Errorf("Sample(%d, %d) reported in bounds", p.x, p.y)
		}
	}
}

func TestFrame_Dimensions(t *testing.T) {
	frame := makeFrame(20, 10, 5, nil)
	if frame.Width() != 20 || frame.Height() != 10 {
		t.Errorf("frame is %dx%d, want 20x10", frame.Width(), frame.Height())
	}
}

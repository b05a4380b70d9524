package detect

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tabstrip/hover-cli/internal/model"
	"github.com/tabstrip/hover-cli/internal/platform"
)

type fakeCursor struct {
	pos image.Point
	err error
}

func (f *fakeCursor) CursorPosition() (image.Point, error) { return f.pos, f.err }

type fakeWindows struct {
	active    model.ActiveWindow
	activeErr error
	windows   []model.Window
	listErr   error
}

func (f *fakeWindows) ActiveWindow() (model.ActiveWindow, error) { return f.active, f.activeErr }
func (f *fakeWindows) ListWindows() ([]model.Window, error)     { return f.windows, f.listErr }

type fakeCapturer struct {
	img   *image.RGBA
	err   error
	calls int
}

func (f *fakeCapturer) CaptureWindow(windowID int) (*image.RGBA, error) {
	f.calls++
	return f.img, f.err
}

func newTestDetector(cursor *fakeCursor, windows *fakeWindows, capturer *fakeCapturer) *Detector {
	p := &platform.Provider{Cursor: cursor, Windows: windows, Capturer: capturer}
	return New(p, testConfig(), zerolog.Nop())
}

// browserWindow is a focused Edge window at (100, 100), 800×600.
func browserWindow() model.Window {
	return model.Window{
		ID:      1,
		App:     "msedge.exe",
		Title:   "Docs - Microsoft Edge",
		Bounds:  [4]int{100, 100, 800, 600},
		Focused: true,
	}
}

func activeFor(w model.Window) model.ActiveWindow {
	return model.ActiveWindow{Title: w.Title, Process: w.App, Bounds: w.Bounds}
}

func TestDetector_HoverHit(t *testing.T) {
	win := browserWindow()
	// Pink band on the scan row at window-relative columns [10, 50).
	capturer := &fakeCapturer{img: makeImage(800, 600, 30, []band{{10, 50, pink}})}
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}}, // window-relative (30, 15)
		&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
		capturer,
	)

	index, err := d.HoveredGroupIndex()
	if err != nil {
		t.Fatalf("HoveredGroupIndex() error: %v", err)
	}
	if index != 1 {
		t.Errorf("HoveredGroupIndex() = %d, want 1", index)
	}
	if capturer.calls != 1 {
		t.Errorf("capture calls = %d, want 1", capturer.calls)
	}
}

func TestDetector_NonBrowserWindowSkipsCapture(t *testing.T) {
	win := model.Window{ID: 1, App: "notepad.exe", Title: "notes", Bounds: [4]int{100, 100, 800, 600}, Focused: true}
	capturer := &fakeCapturer{}
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}},
		&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
		capturer,
	)

	index, err := d.HoveredGroupIndex()
	if err != nil {
		t.Fatalf("HoveredGroupIndex() error: %v", err)
	}
	if index != 0 {
		t.Errorf("HoveredGroupIndex() = %d, want 0", index)
	}
	if capturer.calls != 0 {
		t.Errorf("capture calls = %d, want 0", capturer.calls)
	}
}

func TestDetector_CursorOutsideStrip(t *testing.T) {
	win := browserWindow()
	tests := []struct {
		name string
		pos  image.Point
	}{
		{"below_strip", image.Point{X: 130, Y: 161}}, // strip bottom is y=160 inclusive
		{"left_of_window", image.Point{X: 99, Y: 115}},
		{"right_of_window", image.Point{X: 901, Y: 115}},
		{"above_window", image.Point{X: 130, Y: 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capturer := &fakeCapturer{}
			d := newTestDetector(
				&fakeCursor{pos: tt.pos},
				&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
				capturer,
			)

			index, err := d.HoveredGroupIndex()
			if err != nil {
				t.Fatalf("HoveredGroupIndex() error: %v", err)
			}
			if index != 0 {
				t.Errorf("HoveredGroupIndex() = %d, want 0", index)
			}
			if capturer.calls != 0 {
				t.Errorf("capture calls = %d, want 0", capturer.calls)
			}
		})
	}
}

func TestDetector_CursorOnStripEdgeIsInside(t *testing.T) {
	win := browserWindow()
	capturer := &fakeCapturer{img: makeImage(800, 600, 30, nil)}
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 160}}, // bottom edge, inclusive
		&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
		capturer,
	)

	if _, err := d.HoveredGroupIndex(); err != nil {
		t.Fatalf("HoveredGroupIndex() error: %v", err)
	}
	if capturer.calls != 1 {
		t.Errorf("capture calls = %d, want 1", capturer.calls)
	}
}

func TestDetector_CaptureError(t *testing.T) {
	win := browserWindow()
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}},
		&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
		&fakeCapturer{err: errors.New("bitblt failed")},
	)

	_, err := d.HoveredGroupIndex()
	if err == nil {
		t.Fatal("HoveredGroupIndex() expected error")
	}
	if !strings.Contains(err.Error(), "capture window 1") {
		t.Errorf("error %q does not name the window", err)
	}
}

func TestDetector_NoFocusedWindow(t *testing.T) {
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}},
		&fakeWindows{
			active:  model.ActiveWindow{Title: "something", Process: "explorer.exe"},
			windows: []model.Window{{ID: 1, App: "msedge.exe", Title: "a"}},
		},
		&fakeCapturer{},
	)

	_, err := d.HoveredGroupIndex()
	if !errors.Is(err, ErrNoFocusedWindow) {
		t.Errorf("HoveredGroupIndex() error = %v, want ErrNoFocusedWindow", err)
	}
}

func TestDetector_ActiveWindowError(t *testing.T) {
	d := newTestDetector(
		&fakeCursor{},
		&fakeWindows{activeErr: errors.New("no active window")},
		&fakeCapturer{},
	)

	if _, err := d.HoveredGroupIndex(); err == nil {
		t.Fatal("HoveredGroupIndex() expected error")
	}
}

func TestDetector_PopupResolvesToParent(t *testing.T) {
	parent := browserWindow()
	popup := model.ActiveWindow{Title: "", Process: "msedge.exe", Bounds: [4]int{110, 130, 200, 300}}
	capturer := &fakeCapturer{img: makeImage(800, 600, 30, []band{{10, 50, pink}})}
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}},
		&fakeWindows{active: popup, windows: []model.Window{parent}},
		capturer,
	)

	index, err := d.HoveredGroupIndex()
	if err != nil {
		t.Fatalf("HoveredGroupIndex() error: %v", err)
	}
	if index != 1 {
		t.Errorf("HoveredGroupIndex() = %d, want 1", index)
	}
}

func TestDetector_DebugImageWritten(t *testing.T) {
	win := browserWindow()
	capturer := &fakeCapturer{img: makeImage(800, 600, 30, []band{{10, 50, pink}})}
	d := newTestDetector(
		&fakeCursor{pos: image.Point{X: 130, Y: 115}},
		&fakeWindows{active: activeFor(win), windows: []model.Window{win}},
		capturer,
	)
	dir := t.TempDir()
	d.EnableDebugImages(dir)

	if _, err := d.HoveredGroupIndex(); err != nil {
		t.Fatalf("HoveredGroupIndex() error: %v", err)
	}

	entries, err := filesIn(dir)
	if err != nil {
		t.Fatalf("reading debug dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 debug image, found %d", len(entries))
	}
	if !strings.HasPrefix(entries[0], "hover_") || !strings.HasSuffix(entries[0], ".png") {
		t.Errorf("unexpected debug image name %q", entries[0])
	}
}

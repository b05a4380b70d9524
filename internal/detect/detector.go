package detect

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/tabstrip/hover-cli/internal/config"
	"github.com/tabstrip/hover-cli/internal/model"
	"github.com/tabstrip/hover-cli/internal/platform"
)

// Detector runs one detection invocation: resolve the window under
// inspection, check the cursor against its tab strip, capture the strip,
// and scan for the group band under the cursor. Each invocation owns its
// window snapshot and capture buffer; nothing is shared between runs.
type Detector struct {
	cursor   platform.CursorLocator
	windows  platform.WindowLister
	capturer platform.Capturer

	cfg      config.Config
	resolver *Resolver
	scanner  *Scanner
	debug    *DebugRenderer // nil unless debug images are enabled
	log      zerolog.Logger
}

// New builds a detector over the given platform primitives.
func New(p *platform.Provider, cfg config.Config, log zerolog.Logger) *Detector {
	return &Detector{
		cursor:   p.Cursor,
		windows:  p.Windows,
		capturer: p.Capturer,
		cfg:      cfg,
		resolver: NewResolver(cfg),
		scanner:  NewScanner(NewPalette(cfg), cfg.StripHeight/2, cfg.ProximityRadius),
		log:      log,
	}
}

// EnableDebugImages makes every scan persist an annotated strip image into dir.
func (d *Detector) EnableDebugImages(dir string) {
	d.debug = NewDebugRenderer(dir)
}

// HoveredGroupIndex returns the 1-based ordinal of the tab-group band under
// the cursor, or 0 when no band applies: the resolved window is not a
// browser, the cursor is outside the tab strip, over plain background, or
// in a gap between bands. Those cases are deliberately indistinguishable in
// the result; the debug log tells them apart.
func (d *Detector) HoveredGroupIndex() (uint32, error) {
	active, err := d.windows.ActiveWindow()
	if err != nil {
		return 0, fmt.Errorf("query active window: %w", err)
	}
	d.log.Debug().Str("title", active.Title).Str("process", active.Process).Msg("active window")

	snapshot, err := d.windows.ListWindows()
	if err != nil {
		return 0, fmt.Errorf("enumerate windows: %w", err)
	}

	win, err := d.resolver.Resolve(active, snapshot)
	if err != nil {
		return 0, err
	}
	d.log.Debug().Str("app", win.App).Str("title", win.Title).Int("id", win.ID).Msg("resolved window")

	if !d.resolver.IsBrowser(win) {
		d.log.Debug().Str("app", win.App).Msg("not a browser window")
		return 0, nil
	}

	cursor, err := d.cursor.CursorPosition()
	if err != nil {
		return 0, fmt.Errorf("query cursor: %w", err)
	}

	strip := stripRect(win, d.cfg.StripHeight)
	if !inRect(cursor, strip) {
		d.log.Debug().Int("x", cursor.X).Int("y", cursor.Y).Msg("cursor outside tab strip")
		return 0, nil
	}

	img, err := d.capturer.CaptureWindow(win.ID)
	if err != nil {
		return 0, fmt.Errorf("capture window %d: %w", win.ID, err)
	}

	frame := NewFrame(img)
	rel := cursor.Sub(image.Point{X: win.Bounds[0], Y: win.Bounds[1]})
	result := d.scanner.Scan(frame, rel.X)
	d.log.Debug().Uint32("index", result.Index).Int("spans", len(result.Spans)).Msg("scan complete")

	if d.debug != nil {
		// Rendering observes the decision but never alters it.
		if path, err := d.debug.Render(frame, d.scanner.ScanY, rel, result.Spans, d.cfg.StripHeight); err != nil {
			d.log.Warn().Err(err).Msg("debug image failed")
		} else {
			d.log.Debug().Str("path", path).Msg("debug image written")
		}
	}

	return result.Index, nil
}

// stripRect is the tab-strip rectangle of a window: full window width,
// fixed height from the top edge.
func stripRect(w model.Window, height int) image.Rectangle {
	return image.Rect(w.Bounds[0], w.Bounds[1], w.Bounds[0]+w.Bounds[2], w.Bounds[1]+height)
}

// inRect checks containment with inclusive edges on all four sides;
// image.Rectangle.In excludes the max edge, which the strip check includes.
func inRect(p image.Point, r image.Rectangle) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

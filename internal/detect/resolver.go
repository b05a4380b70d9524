package detect

import (
	"strings"

	"github.com/tabstrip/hover-cli/internal/config"
	"github.com/tabstrip/hover-cli/internal/model"
)

// Resolver selects the one window whose tab strip should be inspected.
type Resolver struct {
	cfg config.Config
}

// NewResolver builds a resolver over the given markers and thresholds.
func NewResolver(cfg config.Config) *Resolver { return &Resolver{cfg: cfg} }

// Resolve picks the window to inspect. When the active window looks like a
// transient browser popup (empty title, popup process name), the parent
// browser window sitting just above it is selected instead; otherwise the
// focused window from the snapshot wins. Ties are broken by lowest window
// ID so the choice never depends on enumeration order.
func (r *Resolver) Resolve(active model.ActiveWindow, windows []model.Window) (model.Window, error) {
	if active.Title == "" && r.isPopupProcess(active.Process) {
		return r.popupParent(active, windows)
	}
	return r.focused(windows)
}

// IsBrowser reports whether the window belongs to a supported browser.
func (r *Resolver) IsBrowser(w model.Window) bool {
	app := strings.ToLower(w.App)
	for _, marker := range r.cfg.Browsers {
		if strings.Contains(app, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func (r *Resolver) isPopupProcess(process string) bool {
	p := strings.ToLower(process)
	for _, marker := range r.cfg.PopupProcesses {
		if strings.Contains(p, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// popupParent finds the browser window a popup belongs to: a titled browser
// window directly above the popup (within PopupMaxYOffset) and not far to
// its right, preferring the candidate closest to the popup from the left.
func (r *Resolver) popupParent(popup model.ActiveWindow, windows []model.Window) (model.Window, error) {
	popupX, popupY := popup.Bounds[0], popup.Bounds[1]

	var (
		best    model.Window
		bestGap int
		found   bool
	)
	for _, w := range windows {
		if !r.IsBrowser(w) || w.Title == "" {
			continue
		}
		yDiff := popupY - w.Bounds[1]
		if yDiff <= 0 || yDiff >= r.cfg.PopupMaxYOffset {
			continue
		}
		if w.Bounds[0] >= popupX+r.cfg.PopupXTolerance {
			continue
		}
		gap := popupX - w.Bounds[0]
		if !found || gap < bestGap || (gap == bestGap && w.ID < best.ID) {
			best = w
			bestGap = gap
			found = true
		}
	}
	if !found {
		return model.Window{}, ErrNoPopupParent
	}
	return best, nil
}

// focused returns the snapshot window flagged as focused, lowest ID first
// when more than one is flagged.
func (r *Resolver) focused(windows []model.Window) (model.Window, error) {
	var best model.Window
	found := false
	for _, w := range windows {
		if !w.Focused {
			continue
		}
		if !found || w.ID < best.ID {
			best = w
			found = true
		}
	}
	if !found {
		return model.Window{}, ErrNoFocusedWindow
	}
	return best, nil
}

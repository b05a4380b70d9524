package model

// Window is one entry in a window-enumeration snapshot. A snapshot is taken
// once per invocation; IDs and bounds are not valid beyond it.
type Window struct {
	App     string `json:"app"`
	PID     int    `json:"pid"`
	Title   string `json:"title"`
	ID      int    `json:"id"`
	Bounds  [4]int `json:"bounds"` // x, y, width, height
	Focused bool   `json:"focused,omitempty"`
}

// ActiveWindow describes the OS-reported foreground window. It may be a
// transient popup (e.g. a context menu) rather than a top-level window.
type ActiveWindow struct {
	Title   string `json:"title"`
	Process string `json:"process"` // executable base name, e.g. "msedge.exe"
	Bounds  [4]int `json:"bounds"`
}

//go:build windows

package win

import "golang.org/x/sys/windows"

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procGetCursorPos             = user32.NewProc("GetCursorPos")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowDC              = user32.NewProc("GetWindowDC")
	procReleaseDC                = user32.NewProc("ReleaseDC")

	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procDeleteDC               = gdi32.NewProc("DeleteDC")

	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

// Desktop implements the platform interfaces against the Win32 API.
type Desktop struct{}

const processPerMonitorDPIAware = 2

// setDPIAware opts the process into per-monitor DPI awareness so cursor
// coordinates and captured pixels share one coordinate space. The call
// fails when awareness was already set by the host process; that is fine.
func setDPIAware() {
	procSetProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
}

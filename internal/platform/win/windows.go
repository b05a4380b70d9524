//go:build windows

package win

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tabstrip/hover-cli/internal/model"
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// ListWindows snapshots all visible top-level windows. The foreground
// window is flagged as focused.
func (d *Desktop) ListWindows() ([]model.Window, error) {
	foreground, _, _ := procGetForegroundWindow.Call()

	var out []model.Window
	cb := windows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
			return 1 // continue enumeration
		}
		w, err := describeWindow(hwnd)
		if err != nil {
			return 1 // skip windows we cannot inspect
		}
		w.Focused = hwnd == foreground
		out = append(out, w)
		return 1
	})

	ret, _, err := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	return out, nil
}

// ActiveWindow returns the foreground window descriptor.
func (d *Desktop) ActiveWindow() (model.ActiveWindow, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return model.ActiveWindow{}, fmt.Errorf("no foreground window")
	}
	w, err := describeWindow(hwnd)
	if err != nil {
		return model.ActiveWindow{}, err
	}
	return model.ActiveWindow{Title: w.Title, Process: w.App, Bounds: w.Bounds}, nil
}

func describeWindow(hwnd uintptr) (model.Window, error) {
	var r rect
	if ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
		return model.Window{}, fmt.Errorf("GetWindowRect: %w", err)
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

	return model.Window{
		App:    processName(pid),
		PID:    int(pid),
		Title:  windowTitle(hwnd),
		ID:     int(hwnd),
		Bounds: [4]int{int(r.Left), int(r.Top), int(r.Right - r.Left), int(r.Bottom - r.Top)},
	}, nil
}

func windowTitle(hwnd uintptr) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

// processName resolves a PID to its executable base name, e.g. "msedge.exe".
// Windows we cannot open (elevated processes) get an empty app name.
func processName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return filepath.Base(windows.UTF16ToString(buf[:size]))
}

//go:build windows

package window

import (
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

// walk visits visible, titled top-level windows in Z order (front to back)
// until visit returns false. Windows whose owning process cannot be opened
// are skipped.
func walk(visit func(Snapshot) bool) error {
	cb := windows.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		title := windowText(hwnd)
		if title == "" {
			return 1
		}
		var pid uint32
		procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
		name, ok := processImageName(pid)
		if !ok {
			return 1
		}
		if !visit(Snapshot{Handle: Handle(hwnd), ProcessName: name, Title: title}) {
			return 0
		}
		return 1
	})
	// EnumWindows reports failure when the callback stops it early, so its
	// return value is not a usable error signal here.
	procEnumWindows.Call(cb, 0)
	return nil
}

func windowText(hwnd uintptr) string {
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	r, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:r])
}

// processImageName resolves the executable file name of pid with minimal
// query rights. Protected or higher-privilege processes that refuse
// OpenProcess yield ok == false; callers treat that as "skip", not an error.
func processImageName(pid uint32) (name string, ok bool) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, 32768)
	sz := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &sz); err != nil || sz == 0 {
		return "", false
	}
	return filepath.Base(windows.UTF16ToString(buf[:sz])), true
}

// IsValid reports whether h still references a live window.
func IsValid(h Handle) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

//go:build windows

package reparent

import (
	"fmt"

	"golang.org/x/sys/windows"

	"winhost/window"
)

const (
	gwlStyle   = -16
	gwlExStyle = -20

	wsChild       = 0x40000000
	wsPopup       = 0x80000000
	wsCaption     = 0x00C00000
	wsThickFrame  = 0x00040000
	wsMinimizeBox = 0x00020000
	wsMaximizeBox = 0x00010000
	wsSysMenu     = 0x00080000

	wsExDlgModalFrame = 0x00000001
	wsExWindowEdge    = 0x00000100
	wsExClientEdge    = 0x00000200
	wsExStaticEdge    = 0x00020000

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpFrameChanged = 0x0020
)

// decorations are the style bits stripped while a window is embedded and
// restored when it is detached.
const decorations = wsPopup | wsCaption | wsThickFrame | wsMinimizeBox | wsMaximizeBox | wsSysMenu

const edgeStyles = wsExDlgModalFrame | wsExWindowEdge | wsExClientEdge | wsExStaticEdge

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetParent         = user32.NewProc("SetParent")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
)

// Attach reparents child under parent and rewrites its styles to those of a
// borderless child window. Both handles are liveness-checked at call time;
// a failed SetParent (dead window, cross-privilege target, access denied)
// leaves the child untouched.
func Attach(child, parent window.Handle) error {
	if !window.IsValid(child) || !window.IsValid(parent) {
		return ErrWindowGone
	}

	r, _, err := procSetParent.Call(uintptr(child), uintptr(parent))
	if r == 0 {
		return fmt.Errorf("SetParent: %w", err)
	}

	style := getWindowLong(child, gwlStyle)
	style &^= decorations
	style |= wsChild
	setWindowLong(child, gwlStyle, style)

	ex := getWindowLong(child, gwlExStyle)
	ex &^= edgeStyles
	setWindowLong(child, gwlExStyle, ex)

	redrawFrame(child)
	return nil
}

// Detach returns an embedded window to the top level and restores the
// decoration styles removed by Attach.
func Detach(h window.Handle) error {
	if !window.IsValid(h) {
		return ErrWindowGone
	}

	r, _, err := procSetParent.Call(uintptr(h), 0)
	if r == 0 {
		return fmt.Errorf("SetParent: %w", err)
	}

	style := getWindowLong(h, gwlStyle)
	style &^= wsChild
	style |= decorations
	setWindowLong(h, gwlStyle, style)

	redrawFrame(h)
	return nil
}

func getWindowLong(h window.Handle, index int32) uintptr {
	r, _, _ := procGetWindowLongPtrW.Call(uintptr(h), uintptr(int64(index)))
	return r
}

func setWindowLong(h window.Handle, index int32, value uintptr) {
	procSetWindowLongPtrW.Call(uintptr(h), uintptr(int64(index)), value)
}

// redrawFrame applies the new styles without moving, resizing, or
// re-ordering the window.
func redrawFrame(h window.Handle) {
	procSetWindowPos.Call(uintptr(h), 0, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoZOrder|swpFrameChanged)
}

//go:build !windows

package reparent

import "winhost/window"

// Attach fails immediately: reparenting a foreign client out from under the
// window manager (X11) has no supported equivalent here, and Wayland exposes
// no cross-process reparenting primitive at all. The OS is never called.
func Attach(child, parent window.Handle) error {
	return ErrNotSupported
}

// Detach fails immediately; see Attach.
func Detach(window.Handle) error {
	return ErrNotSupported
}

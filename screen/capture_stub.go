//go:build !windows && !linux

package screen

import (
	"errors"
	"image"

	"winhost/window"
)

// ErrUnsupported is returned on platforms without a capture backend.
var ErrUnsupported = errors.New("screen capture not supported on this platform")

// VirtualBounds returns the zero rectangle.
func VirtualBounds() Rect {
	return Rect{}
}

// CaptureDesktop fails with ErrUnsupported.
func CaptureDesktop() (*image.RGBA, error) {
	return nil, ErrUnsupported
}

// CaptureWindow fails with ErrUnsupported.
func CaptureWindow(window.Handle) (*image.RGBA, error) {
	return nil, ErrUnsupported
}

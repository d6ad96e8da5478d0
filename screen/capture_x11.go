//go:build linux

package screen

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xgraphics"

	"winhost/internal/xconn"
	"winhost/window"
)

// VirtualBounds returns the root window geometry of the default screen.
func VirtualBounds() Rect {
	xu, err := xconn.Shared()
	if err != nil {
		return Rect{}
	}
	s := xu.Screen()
	return Rect{Right: int32(s.WidthInPixels), Bottom: int32(s.HeightInPixels)}
}

// CaptureDesktop captures the root window of the default screen.
func CaptureDesktop() (*image.RGBA, error) {
	xu, err := xconn.Shared()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return captureDrawable(xu, xproto.Drawable(xu.RootWin()))
}

// CaptureWindow captures the contents of h's drawable. Unlike the Windows
// backend this reads the window's own surface, so occluding windows do not
// appear, but the window must be viewable for the server to have contents.
func CaptureWindow(h window.Handle) (*image.RGBA, error) {
	xu, err := xconn.Shared()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return captureDrawable(xu, xproto.Drawable(h))
}

func captureDrawable(xu *xgbutil.XUtil, d xproto.Drawable) (*image.RGBA, error) {
	ximg, err := xgraphics.NewDrawable(xu, d)
	if err != nil {
		return nil, fmt.Errorf("read drawable: %w", err)
	}

	bounds := ximg.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, ximg.At(x, y))
		}
	}
	return out, nil
}

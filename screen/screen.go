// Package screen captures frames of the desktop or of a single window. It is
// the capture half of the fallback workflow for platforms where window
// embedding is unsupported: capture the target window's frames and drive it
// with synthesized input instead of reparenting it.
package screen

// Rect is a rectangle in virtual-desktop coordinates. Left/Top can be
// negative when a monitor sits left of or above the primary one.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) width() int32  { return r.Right - r.Left }
func (r Rect) height() int32 { return r.Bottom - r.Top }

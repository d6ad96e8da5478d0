//go:build windows

package screen

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"

	"winhost/window"
)

const (
	srccopy      = 0x00CC0020
	dibRGBColors = 0
	biRGB        = 0

	smXVirtualScreen  = 76
	smYVirtualScreen  = 77
	smCXVirtualScreen = 78
	smCYVirtualScreen = 79
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procGetWindowRect      = user32.NewProc("GetWindowRect")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procBitBlt             = gdi32.NewProc("BitBlt")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
)

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// VirtualBounds returns the bounding rectangle of the entire virtual
// desktop, covering all monitors.
func VirtualBounds() Rect {
	x, _, _ := procGetSystemMetrics.Call(smXVirtualScreen)
	y, _, _ := procGetSystemMetrics.Call(smYVirtualScreen)
	w, _, _ := procGetSystemMetrics.Call(smCXVirtualScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYVirtualScreen)
	return Rect{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x) + int32(w),
		Bottom: int32(y) + int32(h),
	}
}

// CaptureDesktop captures the entire virtual desktop.
func CaptureDesktop() (*image.RGBA, error) {
	return captureRect(VirtualBounds())
}

// CaptureWindow captures the on-screen rectangle of h. The window must be
// live and at least partially on the virtual desktop; occluding windows are
// captured as-is, since this reads the screen, not the window's own surface.
func CaptureWindow(h window.Handle) (*image.RGBA, error) {
	if !window.IsValid(h) {
		return nil, fmt.Errorf("capture: window is gone or invalid")
	}
	var r Rect
	ret, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return nil, fmt.Errorf("GetWindowRect: %w", err)
	}
	return captureRect(r)
}

// captureRect blits the given screen rectangle into a DIB section and
// converts the BGRA pixels to an RGBA image.
func captureRect(r Rect) (*image.RGBA, error) {
	width, height := r.width(), r.height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty capture rectangle %+v", r)
	}
	// 4 bytes per pixel; cap a single capture at roughly 500MB.
	if int64(width)*int64(height)*4 > 1024*1024*500 {
		return nil, fmt.Errorf("capture rectangle too large: %dx%d", width, height)
	}

	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return nil, fmt.Errorf("GetDC failed")
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return nil, fmt.Errorf("CreateCompatibleDC failed")
	}
	defer procDeleteDC.Call(memDC)

	// Top-down DIB (negative height) so (0,0) is the top-left pixel.
	bmi := bitmapInfoHeader{
		BiSize:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		BiWidth:       width,
		BiHeight:      -height,
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: biRGB,
	}

	var bits uintptr
	bitmap, _, _ := procCreateDIBSection.Call(
		memDC,
		uintptr(unsafe.Pointer(&bmi)),
		dibRGBColors,
		uintptr(unsafe.Pointer(&bits)),
		0, 0,
	)
	if bitmap == 0 {
		return nil, fmt.Errorf("CreateDIBSection failed")
	}
	defer procDeleteObject.Call(bitmap)

	old, _, _ := procSelectObject.Call(memDC, bitmap)
	if old == 0 {
		return nil, fmt.Errorf("SelectObject failed")
	}
	defer procSelectObject.Call(memDC, old)

	ret, _, _ := procBitBlt.Call(
		memDC,
		0, 0, uintptr(width), uintptr(height),
		screenDC,
		uintptr(int64(r.Left)), uintptr(int64(r.Top)),
		srccopy,
	)
	if ret == 0 {
		return nil, fmt.Errorf("BitBlt failed")
	}

	// The DIB memory dies with the bitmap, so the pixels must be copied out
	// before returning.
	total := int(width) * int(height) * 4
	src := unsafe.Slice((*byte)(unsafe.Pointer(bits)), total)
	dst := make([]byte, total)
	for i := 0; i < total; i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 255
	}

	return &image.RGBA{
		Pix:    dst,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}, nil
}

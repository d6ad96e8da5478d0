//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040

	keyeventfKeyUp = 0x0002

	vkLShift   = 0xA0
	vkLControl = 0xA2
	vkLMenu    = 0xA4
	vkLWin     = 0x5B
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSendInput    = user32.NewProc("SendInput")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procVkKeyScanW   = user32.NewProc("VkKeyScanW")
)

type mouseInput struct {
	Dx, Dy    int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// rawInput mirrors the Win32 INPUT struct. The union is sized by its largest
// member (MOUSEINPUT); keyboard events overlay it.
type rawInput struct {
	Type uint32
	_    uint32
	mi   mouseInput
}

type winDevice struct{}

func newDevice() (device, error) {
	return winDevice{}, nil
}

func (winDevice) MoveCursor(x, y int) error {
	r, _, err := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r == 0 {
		return fmt.Errorf("SetCursorPos: %w", err)
	}
	return nil
}

var buttonFlags = map[Button][2]uint32{
	ButtonLeft:   {mouseeventfLeftDown, mouseeventfLeftUp},
	ButtonRight:  {mouseeventfRightDown, mouseeventfRightUp},
	ButtonMiddle: {mouseeventfMiddleDown, mouseeventfMiddleUp},
}

func (d winDevice) Button(b Button, press bool) error {
	flags, ok := buttonFlags[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedButton, b)
	}
	var in rawInput
	in.Type = inputMouse
	if press {
		in.mi.Flags = flags[0]
	} else {
		in.mi.Flags = flags[1]
	}
	return send(&in)
}

var namedVK = map[namedKey]Keycode{
	keyEnter:      0x0D, // VK_RETURN
	keyTab:        0x09,
	keySpace:      0x20,
	keyBackspace:  0x08,
	keyDelete:     0x2E,
	keyEscape:     0x1B,
	keyArrowUp:    0x26,
	keyArrowDown:  0x28,
	keyArrowLeft:  0x25,
	keyArrowRight: 0x27,
}

func (winDevice) ResolveKey(key string) (Keycode, bool, error) {
	spec, err := parseKey(key)
	if err != nil {
		return 0, false, err
	}
	if spec.named != keyNone {
		return namedVK[spec.named], false, nil
	}

	switch ch := spec.r; {
	case ch >= 'A' && ch <= 'Z':
		return Keycode(ch), true, nil
	case ch >= 'a' && ch <= 'z':
		return Keycode(ch - 32), false, nil
	case ch >= '0' && ch <= '9':
		return Keycode(ch), false, nil
	}

	// Layout-dependent lookup for everything else.
	r, _, _ := procVkKeyScanW.Call(uintptr(uint16(spec.r)))
	scan := int16(uint16(r))
	if scan == -1 || scan&0xFF == 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	return Keycode(scan & 0xFF), scan&0x100 != 0, nil
}

var winModifiers = map[modKey]Keycode{
	modShift: vkLShift,
	modCtrl:  vkLControl,
	modAlt:   vkLMenu,
	modMeta:  vkLWin,
}

func (winDevice) Modifier(m modKey) Keycode {
	return winModifiers[m]
}

func (winDevice) Key(code Keycode, press bool) error {
	var in rawInput
	in.Type = inputKeyboard
	ki := (*keybdInput)(unsafe.Pointer(&in.mi))
	ki.Vk = uint16(code)
	if !press {
		ki.Flags = keyeventfKeyUp
	}
	return send(&in)
}

func send(in *rawInput) error {
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(in)), unsafe.Sizeof(*in))
	if n != 1 {
		return fmt.Errorf("SendInput: %w", err)
	}
	return nil
}

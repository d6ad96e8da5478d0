//go:build linux

package input

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"

	"winhost/internal/xconn"
)

// Keysym values from keysymdef.h for the named control keys and modifiers.
const (
	ksReturn    = 0xff0d
	ksTab       = 0xff09
	ksSpace     = 0x0020
	ksBackSpace = 0xff08
	ksDelete    = 0xffff
	ksEscape    = 0xff1b
	ksUp        = 0xff52
	ksDown      = 0xff54
	ksLeft      = 0xff51
	ksRight     = 0xff53

	ksShiftL   = 0xffe1
	ksControlL = 0xffe3
	ksAltL     = 0xffe9
	ksSuperL   = 0xffeb
)

var namedKeysyms = map[namedKey]xproto.Keysym{
	keyEnter:      ksReturn,
	keyTab:        ksTab,
	keySpace:      ksSpace,
	keyBackspace:  ksBackSpace,
	keyDelete:     ksDelete,
	keyEscape:     ksEscape,
	keyArrowUp:    ksUp,
	keyArrowDown:  ksDown,
	keyArrowLeft:  ksLeft,
	keyArrowRight: ksRight,
}

// x11Device injects events through the XTEST extension. Key strings are
// resolved against the server's current keyboard mapping.
type x11Device struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	mapping *xproto.GetKeyboardMappingReply
	minCode xproto.Keycode
	mods    map[modKey]Keycode
}

func newDevice() (device, error) {
	xu, err := xconn.Shared()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	if err := xtest.Init(xu.Conn()); err != nil {
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}

	setup := xproto.Setup(xu.Conn())
	min, max := setup.MinKeycode, setup.MaxKeycode
	mapping, err := xproto.GetKeyboardMapping(xu.Conn(), min, byte(max-min+1)).Reply()
	if err != nil {
		return nil, fmt.Errorf("query keyboard mapping: %w", err)
	}

	d := &x11Device{
		xu:      xu,
		root:    xu.RootWin(),
		mapping: mapping,
		minCode: min,
		mods:    make(map[modKey]Keycode, 4),
	}
	for m, sym := range map[modKey]xproto.Keysym{
		modShift: ksShiftL,
		modCtrl:  ksControlL,
		modAlt:   ksAltL,
		modMeta:  ksSuperL,
	} {
		code, _, ok := d.keycodeFor(sym)
		if !ok {
			return nil, fmt.Errorf("keyboard mapping has no keycode for modifier keysym %#x", sym)
		}
		d.mods[m] = code
	}
	return d, nil
}

func (d *x11Device) MoveCursor(x, y int) error {
	return d.fake(xproto.MotionNotify, 0, int16(x), int16(y))
}

var buttonDetail = map[Button]byte{
	ButtonLeft:   1,
	ButtonMiddle: 2,
	ButtonRight:  3,
}

func (d *x11Device) Button(b Button, press bool) error {
	detail, ok := buttonDetail[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedButton, b)
	}
	typ := byte(xproto.ButtonPress)
	if !press {
		typ = xproto.ButtonRelease
	}
	return d.fake(typ, detail, 0, 0)
}

func (d *x11Device) ResolveKey(key string) (Keycode, bool, error) {
	spec, err := parseKey(key)
	if err != nil {
		return 0, false, err
	}

	var sym xproto.Keysym
	if spec.named != keyNone {
		sym = namedKeysyms[spec.named]
	} else {
		// Latin-1 keysyms equal the character codepoint, which covers the
		// single-character keys this resolver accepts. An uppercase letter
		// lands in the shifted column of its keycode, so the implicit-shift
		// requirement falls out of the mapping scan.
		sym = xproto.Keysym(spec.r)
	}

	code, shifted, ok := d.keycodeFor(sym)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q", ErrUnsupportedKey, key)
	}
	return code, shifted, nil
}

func (d *x11Device) Modifier(m modKey) Keycode {
	return d.mods[m]
}

func (d *x11Device) Key(code Keycode, press bool) error {
	typ := byte(xproto.KeyPress)
	if !press {
		typ = xproto.KeyRelease
	}
	return d.fake(typ, byte(code), 0, 0)
}

// keycodeFor scans the plain and shifted columns of the keyboard mapping for
// sym. shifted reports whether the keysym sits in the shifted column.
func (d *x11Device) keycodeFor(sym xproto.Keysym) (code Keycode, shifted, ok bool) {
	per := int(d.mapping.KeysymsPerKeycode)
	for i := 0; i*per < len(d.mapping.Keysyms); i++ {
		row := d.mapping.Keysyms[i*per:]
		kc := Keycode(int(d.minCode) + i)
		if row[0] == sym {
			return kc, false, true
		}
		if per > 1 && row[1] == sym {
			return kc, true, true
		}
	}
	return 0, false, false
}

func (d *x11Device) fake(typ, detail byte, x, y int16) error {
	err := xtest.FakeInputChecked(d.xu.Conn(), typ, detail, 0, d.root, x, y, 0).Check()
	if err != nil {
		return fmt.Errorf("XTestFakeInput: %w", err)
	}
	return nil
}

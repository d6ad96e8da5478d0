// Package input synthesizes mouse and keyboard events into the system input
// queue. Descriptors are resolved into ordered primitive OS actions: for a
// chorded key event the requested modifiers are pressed first (shift, ctrl,
// alt, meta), then the primary key action is issued, then every pressed
// modifier is released in reverse order.
//
// Note that the trailing modifier release is unconditional: a Down event
// leaves the primary key logically held but not the modifiers, so a held
// chord cannot be composed across separate events.
package input

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrUnsupportedKey implies the key string cannot be resolved to a
	// physical key code.
	ErrUnsupportedKey = errors.New("unsupported key or character")

	// ErrUnsupportedButton implies the mouse button id is out of range.
	ErrUnsupportedButton = errors.New("unsupported mouse button")

	// ErrNotSupported implies the platform has no input synthesis backend.
	ErrNotSupported = errors.New("input synthesis not supported on this platform")
)

// MouseKind enumerates mouse event kinds.
type MouseKind int

const (
	MouseMove MouseKind = iota
	MouseDown
	MouseUp
	MouseClick
)

// Button identifies a mouse button using the conventional 0-based ids.
type Button int

const (
	ButtonLeft   Button = 0
	ButtonRight  Button = 1
	ButtonMiddle Button = 2
)

// MouseEvent describes one synthetic mouse action in screen coordinates.
// The zero value is a move to (0, 0).
type MouseEvent struct {
	Kind    MouseKind
	X, Y    int
	Button  Button
	Buttons int
	Shift   bool
	Ctrl    bool
	Alt     bool
	Meta    bool
}

// KeyKind enumerates keyboard event kinds. There is no distinct long-press
// primitive, so KeyPress is treated identically to KeyDown.
type KeyKind int

const (
	KeyDown KeyKind = iota
	KeyUp
	KeyPress
)

// KeyboardEvent describes one synthetic key action. Key follows the DOM key
// naming for the named control keys (Enter, Tab, Space, Backspace, Delete,
// Escape, ArrowUp, ArrowDown, ArrowLeft, ArrowRight); any other value must
// be a single character.
type KeyboardEvent struct {
	Kind  KeyKind
	Key   string
	Code  string
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Keycode is a platform physical key code: a Win32 virtual-key code on
// Windows, an X keycode on X11.
type Keycode uint32

type modKey int

const (
	modShift modKey = iota
	modCtrl
	modAlt
	modMeta
)

// device is the primitive action surface one platform backend implements.
type device interface {
	// MoveCursor repositions the system cursor to screen coordinates.
	MoveCursor(x, y int) error
	// Button presses or releases a mouse button at the current cursor
	// position.
	Button(b Button, press bool) error
	// ResolveKey maps a key string to a physical code, also reporting
	// whether the layout requires shift for that key.
	ResolveKey(key string) (code Keycode, implicitShift bool, err error)
	// Modifier returns the physical code of a modifier key.
	Modifier(m modKey) Keycode
	// Key presses or releases a physical key.
	Key(code Keycode, press bool) error
}

// Synthesizer resolves event descriptors into ordered device primitives.
// It is not safe for concurrent use.
type Synthesizer struct {
	dev    device
	devErr error
	log    zerolog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Synthesizer) { s.log = log }
}

// New returns a Synthesizer for the current platform. The OS backend is
// initialized lazily on first use.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synthesizer) device() (device, error) {
	if s.dev == nil && s.devErr == nil {
		s.dev, s.devErr = newDevice()
	}
	return s.dev, s.devErr
}

// Mouse issues ev. The cursor is repositioned for every event kind before
// any button primitive; a Move always reports success.
func (s *Synthesizer) Mouse(ev MouseEvent) error {
	dev, err := s.device()
	if err != nil {
		return err
	}

	if err := dev.MoveCursor(ev.X, ev.Y); err != nil && ev.Kind == MouseMove {
		// Moves never fail the caller; record and carry on.
		s.log.Debug().Err(err).Int("x", ev.X).Int("y", ev.Y).Msg("cursor move refused")
	}

	switch ev.Kind {
	case MouseMove:
		return nil
	case MouseDown, MouseUp:
		if err := validButton(ev.Button); err != nil {
			return err
		}
		return dev.Button(ev.Button, ev.Kind == MouseDown)
	case MouseClick:
		if err := validButton(ev.Button); err != nil {
			return err
		}
		if err := dev.Button(ev.Button, true); err != nil {
			return err
		}
		return dev.Button(ev.Button, false)
	}
	return fmt.Errorf("unknown mouse event kind %d", ev.Kind)
}

// Keyboard issues ev. KeyPress behaves as KeyDown. Modifier presses that the
// OS refuses are logged and skipped; the reported outcome is that of the
// primary key action.
func (s *Synthesizer) Keyboard(ev KeyboardEvent) error {
	dev, err := s.device()
	if err != nil {
		return err
	}

	code, implicitShift, err := dev.ResolveKey(ev.Key)
	if err != nil {
		return err
	}

	chord := []struct {
		want bool
		m    modKey
	}{
		{ev.Shift || implicitShift, modShift},
		{ev.Ctrl, modCtrl},
		{ev.Alt, modAlt},
		{ev.Meta, modMeta},
	}

	var held []Keycode
	for _, c := range chord {
		if !c.want {
			continue
		}
		mc := dev.Modifier(c.m)
		if err := dev.Key(mc, true); err != nil {
			s.log.Debug().Err(err).Uint32("code", uint32(mc)).Msg("modifier press refused")
			continue
		}
		held = append(held, mc)
	}

	primaryErr := dev.Key(code, ev.Kind != KeyUp)

	// Held modifiers are always released, even for a Down event.
	for i := len(held) - 1; i >= 0; i-- {
		if err := dev.Key(held[i], false); err != nil {
			s.log.Debug().Err(err).Uint32("code", uint32(held[i])).Msg("modifier release refused")
		}
	}

	return primaryErr
}

func validButton(b Button) error {
	if b < ButtonLeft || b > ButtonMiddle {
		return fmt.Errorf("%w: %d", ErrUnsupportedButton, b)
	}
	return nil
}

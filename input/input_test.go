package input

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type action struct {
	op    string // "move", "button", "key"
	x, y  int
	b     Button
	code  Keycode
	press bool
}

// fakeDevice records primitive actions in issue order. Key resolution
// mirrors the ASCII rules shared by the real backends.
type fakeDevice struct {
	actions   []action
	moveErr   error
	buttonErr error
	keyErr    error
}

func (d *fakeDevice) MoveCursor(x, y int) error {
	d.actions = append(d.actions, action{op: "move", x: x, y: y})
	return d.moveErr
}

func (d *fakeDevice) Button(b Button, press bool) error {
	d.actions = append(d.actions, action{op: "button", b: b, press: press})
	return d.buttonErr
}

func (d *fakeDevice) ResolveKey(key string) (Keycode, bool, error) {
	spec, err := parseKey(key)
	if err != nil {
		return 0, false, err
	}
	if spec.named != keyNone {
		return Keycode(0xF000 + spec.named), false, nil
	}
	switch ch := spec.r; {
	case ch >= 'A' && ch <= 'Z':
		return Keycode(ch), true, nil
	case ch >= 'a' && ch <= 'z':
		return Keycode(ch - 32), false, nil
	case ch >= '0' && ch <= '9':
		return Keycode(ch), false, nil
	}
	return 0, false, ErrUnsupportedKey
}

func (d *fakeDevice) Modifier(m modKey) Keycode {
	return Keycode(0xE000 + m)
}

func (d *fakeDevice) Key(code Keycode, press bool) error {
	d.actions = append(d.actions, action{op: "key", code: code, press: press})
	return d.keyErr
}

func newTestSynthesizer(dev *fakeDevice) *Synthesizer {
	return &Synthesizer{dev: dev, log: zerolog.Nop()}
}

func TestClickIsDownThenUpAtCoordinates(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Mouse(MouseEvent{Kind: MouseClick, X: 100, Y: 200, Button: ButtonRight})
	require.NoError(t, err)

	require.Equal(t, []action{
		{op: "move", x: 100, y: 200},
		{op: "button", b: ButtonRight, press: true},
		{op: "button", b: ButtonRight, press: false},
	}, dev.actions)
}

func TestMoveAlwaysReportsSuccess(t *testing.T) {
	dev := &fakeDevice{moveErr: errors.New("refused")}
	s := newTestSynthesizer(dev)

	err := s.Mouse(MouseEvent{Kind: MouseMove, X: 5, Y: 6})
	require.NoError(t, err)
	require.Equal(t, []action{{op: "move", x: 5, y: 6}}, dev.actions)
}

func TestDownRepositionsCursorFirst(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Mouse(MouseEvent{Kind: MouseDown, X: 10, Y: 20})
	require.NoError(t, err)
	require.Equal(t, []action{
		{op: "move", x: 10, y: 20},
		{op: "button", b: ButtonLeft, press: true},
	}, dev.actions)
}

func TestOutOfRangeButtonFailsWholePair(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Mouse(MouseEvent{Kind: MouseClick, Button: Button(5)})
	require.ErrorIs(t, err, ErrUnsupportedButton)
	// The cursor is positioned before button validation; no button primitive
	// may follow.
	require.Equal(t, []action{{op: "move"}}, dev.actions)

	dev.actions = nil
	err = s.Mouse(MouseEvent{Kind: MouseUp, Button: Button(-1)})
	require.ErrorIs(t, err, ErrUnsupportedButton)
	require.Equal(t, []action{{op: "move"}}, dev.actions)
}

func TestUppercaseLetterChordsShift(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	// Shift is false in the descriptor; the implicit requirement from key
	// resolution must chord it anyway.
	err := s.Keyboard(KeyboardEvent{Kind: KeyDown, Key: "A"})
	require.NoError(t, err)

	shift := dev.Modifier(modShift)
	require.Equal(t, []action{
		{op: "key", code: shift, press: true},
		{op: "key", code: Keycode('A'), press: true},
		{op: "key", code: shift, press: false},
	}, dev.actions)
}

func TestDownEventStillReleasesModifiers(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Keyboard(KeyboardEvent{Kind: KeyDown, Key: "a", Ctrl: true})
	require.NoError(t, err)

	ctrl := dev.Modifier(modCtrl)
	require.Equal(t, []action{
		{op: "key", code: ctrl, press: true},
		{op: "key", code: Keycode('A'), press: true},
		{op: "key", code: ctrl, press: false},
	}, dev.actions)
}

func TestChordOrderAndReverseRelease(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Keyboard(KeyboardEvent{
		Kind: KeyUp, Key: "x",
		Shift: true, Ctrl: true, Alt: true, Meta: true,
	})
	require.NoError(t, err)

	shift := dev.Modifier(modShift)
	ctrl := dev.Modifier(modCtrl)
	alt := dev.Modifier(modAlt)
	meta := dev.Modifier(modMeta)
	require.Equal(t, []action{
		{op: "key", code: shift, press: true},
		{op: "key", code: ctrl, press: true},
		{op: "key", code: alt, press: true},
		{op: "key", code: meta, press: true},
		{op: "key", code: Keycode('X'), press: false},
		{op: "key", code: meta, press: false},
		{op: "key", code: alt, press: false},
		{op: "key", code: ctrl, press: false},
		{op: "key", code: shift, press: false},
	}, dev.actions)
}

func TestKeyPressBehavesAsKeyDown(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	require.NoError(t, s.Keyboard(KeyboardEvent{Kind: KeyPress, Key: "Enter"}))
	require.Len(t, dev.actions, 1)
	require.True(t, dev.actions[0].press)
}

func TestUnresolvableKeyFailsWithoutPrimitives(t *testing.T) {
	dev := &fakeDevice{}
	s := newTestSynthesizer(dev)

	err := s.Keyboard(KeyboardEvent{Kind: KeyDown, Key: "Foo"})
	require.ErrorIs(t, err, ErrUnsupportedKey)
	require.Empty(t, dev.actions)
}

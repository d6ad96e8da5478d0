package winhost

import (
	"errors"

	"winhost/input"
	"winhost/reparent"
)

var (
	// ErrWindowNotFound implies no enumerated window matched the criteria.
	ErrWindowNotFound = errors.New("window not found")

	// ErrParentRequired implies EmbedWindow was called without a parent
	// window handle.
	ErrParentRequired = errors.New("parent window handle required")

	// ErrNotEmbedded implies the container id has no recorded embedding.
	ErrNotEmbedded = errors.New("window not in embedded list")

	// ErrWindowGone implies a window handle stopped referencing a live
	// window between discovery and use.
	ErrWindowGone = reparent.ErrWindowGone

	// ErrEmbedNotSupported implies this platform has no cross-process
	// reparenting primitive. Discovery and input injection still work;
	// callers should fall back to frame capture plus remote input.
	ErrEmbedNotSupported = reparent.ErrNotSupported

	// ErrUnsupportedKey implies the key string cannot be resolved to a
	// physical key code.
	ErrUnsupportedKey = input.ErrUnsupportedKey

	// ErrUnsupportedButton implies the mouse button id is out of range.
	ErrUnsupportedButton = input.ErrUnsupportedButton
)

//go:build !windows && !linux

package window

import "errors"

// ErrUnsupported is returned on platforms without an enumeration backend.
var ErrUnsupported = errors.New("window enumeration not supported on this platform")

func walk(func(Snapshot) bool) error {
	return ErrUnsupported
}

// IsValid reports whether h still references a live window. Without a
// backend there is no way to check, so every handle is treated as gone.
func IsValid(Handle) bool {
	return false
}

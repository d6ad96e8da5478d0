//go:build !windows && !linux

package input

func newDevice() (device, error) {
	return nil, ErrNotSupported
}

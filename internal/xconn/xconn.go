//go:build linux

// Package xconn owns the process-wide X server connection shared by the
// enumeration, input, and capture backends.
package xconn

import (
	"sync"

	"github.com/BurntSushi/xgbutil"
)

var (
	once sync.Once
	xu   *xgbutil.XUtil
	err  error
)

// Shared returns the lazily established X connection. The first caller pays
// the connection cost; a failed connect (no DISPLAY, no server) is sticky for
// the process lifetime.
func Shared() (*xgbutil.XUtil, error) {
	once.Do(func() {
		xu, err = xgbutil.NewConn()
	})
	return xu, err
}

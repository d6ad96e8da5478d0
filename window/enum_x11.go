//go:build linux

package window

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"winhost/internal/xconn"
)

// walk visits managed, viewable, titled client windows front to back.
// _NET_CLIENT_LIST_STACKING is ordered bottom to top, so it is traversed in
// reverse.
func walk(visit func(Snapshot) bool) error {
	xu, err := xconn.Shared()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}

	clients, err := ewmh.ClientListStackingGet(xu)
	if err != nil || len(clients) == 0 {
		// Some window managers only maintain the unordered list.
		clients, err = ewmh.ClientListGet(xu)
		if err != nil {
			return fmt.Errorf("query client list: %w", err)
		}
	}

	for i := len(clients) - 1; i >= 0; i-- {
		win := clients[i]
		attrs, err := xproto.GetWindowAttributes(xu.Conn(), win).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		title := windowTitle(xu, win)
		if title == "" {
			continue
		}
		pid, err := ewmh.WmPidGet(xu, win)
		if err != nil {
			continue
		}
		name, ok := processExeName(pid)
		if !ok {
			continue
		}
		if !visit(Snapshot{Handle: Handle(win), ProcessName: name, Title: title}) {
			return nil
		}
	}
	return nil
}

func windowTitle(xu *xgbutil.XUtil, win xproto.Window) string {
	if title, err := ewmh.WmNameGet(xu, win); err == nil && title != "" {
		return title
	}
	title, _ := icccm.WmNameGet(xu, win)
	return title
}

// processExeName mirrors the minimal-rights policy of the Windows backend:
// a pid whose /proc entry is unreadable is skipped, not surfaced as an error.
func processExeName(pid uint) (string, bool) {
	if link, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid)); err == nil {
		return filepath.Base(link), true
	}
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(comm)), true
}

// IsValid reports whether h still references a live window.
func IsValid(h Handle) bool {
	xu, err := xconn.Shared()
	if err != nil {
		return false
	}
	_, err = xproto.GetWindowAttributes(xu.Conn(), xproto.Window(h)).Reply()
	return err == nil
}

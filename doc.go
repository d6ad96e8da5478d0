// Package winhost gives a host application OS-level control over foreign
// top-level windows and synthetic input. It discovers windows owned by other
// processes, reparents a chosen window into a surface the host controls, and
// synthesizes mouse/keyboard events targeted at the system input queue.
//
// Key features:
// - Window discovery by process name and title substring
// - Embedding foreign windows into a host parent surface (Windows)
// - Synthetic mouse and keyboard input with modifier chording
// - Frame capture fallback for platforms without reparenting support
//
// Example:
//
//	m := winhost.New()
//	hwnd, err := m.EmbedWindow(winhost.EmbedOptions{
//	    ContainerID: "pane-1",
//	    ProcessName: "notepad.exe",
//	    WindowTitle: "Untitled",
//	    Parent:      parentHandle,
//	})
//	if err != nil {
//	    // errors.Is(err, winhost.ErrEmbedNotSupported) means this platform
//	    // cannot embed; fall back to screen capture plus input injection.
//	}
//	_ = hwnd
//	m.InjectKeyboardEvent(input.KeyboardEvent{Key: "Enter"})
//	m.UnembedWindow("pane-1")
//
// All operations are synchronous and issue blocking OS calls; the calling
// environment serializes access from a single logical thread.
package winhost

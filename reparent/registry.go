// Package reparent moves foreign top-level windows in and out of a
// host-controlled parent surface and tracks which container holds which
// window.
package reparent

import (
	"errors"

	"winhost/window"
)

var (
	// ErrNotSupported implies the platform's windowing model has no usable
	// cross-process reparenting primitive. Window discovery and input
	// injection remain available; callers should fall back to a frame-capture
	// plus remote-input workflow.
	ErrNotSupported = errors.New("window embedding not supported on this platform")

	// ErrWindowGone implies a handle no longer references a live window.
	ErrWindowGone = errors.New("window is gone or invalid")
)

// Registry maps caller-chosen container identifiers to embedded window
// handles. It is the single source of truth for "is this container currently
// embedded", but entries are never validated against live OS state: a
// recorded window may have been destroyed by its owning process. Cleanup of
// such stale entries is the caller's responsibility.
//
// Registry is not safe for concurrent use; callers serialize access.
type Registry struct {
	entries map[string]window.Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]window.Handle)}
}

// Put records h under id, silently overwriting any previous record.
func (r *Registry) Put(id string, h window.Handle) {
	r.entries[id] = h
}

// Get returns the handle recorded under id.
func (r *Registry) Get(id string) (window.Handle, bool) {
	h, ok := r.entries[id]
	return h, ok
}

// Remove deletes the record for id, if any.
func (r *Registry) Remove(id string) {
	delete(r.entries, id)
}

// Len returns the number of recorded embeddings.
func (r *Registry) Len() int {
	return len(r.entries)
}

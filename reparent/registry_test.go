package reparent

import (
	"testing"

	"winhost/window"
)

func TestRegistryPutGet(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("pane"); ok {
		t.Fatal("empty registry returned an entry")
	}

	r.Put("pane", window.Handle(42))
	h, ok := r.Get("pane")
	if !ok || h != 42 {
		t.Fatalf("Get = (%v, %v), want (42, true)", h, ok)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryOverwriteIsSilent(t *testing.T) {
	r := NewRegistry()
	r.Put("pane", window.Handle(1))
	r.Put("pane", window.Handle(2))

	h, _ := r.Get("pane")
	if h != 2 {
		t.Fatalf("overwrite kept handle %v, want 2", h)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d after overwrite, want 1", r.Len())
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Put("a", window.Handle(1))
	r.Put("b", window.Handle(2))

	r.Remove("a")
	if _, ok := r.Get("a"); ok {
		t.Fatal("removed entry still present")
	}
	if _, ok := r.Get("b"); !ok {
		t.Fatal("unrelated entry removed")
	}

	// Removing a missing id is a no-op.
	r.Remove("a")
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

// Package window discovers top-level windows owned by other processes.
//
// Every call re-walks the live OS window list; nothing is cached. A Snapshot
// is only guaranteed accurate at the instant it was taken — the referenced
// window can be closed by its owning process at any time, so validity must be
// re-checked with IsValid immediately before any mutating use of the handle.
package window

import "strings"

// Handle identifies a live OS window. It is a borrowed reference owned by the
// OS: never interpret or dereference it, only pass it back to the platform
// layer that produced it.
type Handle uintptr

// Snapshot describes one visible, titled top-level window at enumeration time.
type Snapshot struct {
	Handle      Handle
	ProcessName string // executable file name, not the full path
	Title       string
}

// Query selects windows by optional case-sensitive substring criteria.
// An empty field matches every window.
type Query struct {
	ProcessName string
	Title       string
}

func (q Query) matches(s Snapshot) bool {
	return strings.Contains(s.ProcessName, q.ProcessName) &&
		strings.Contains(s.Title, q.Title)
}

// List enumerates all currently visible top-level windows with a non-empty
// title, front to back. Windows whose owning process cannot be opened for a
// name query are skipped silently. The result is deduplicated by
// (ProcessName, Title), keeping the first occurrence.
func List() ([]Snapshot, error) {
	var all []Snapshot
	err := walk(func(s Snapshot) bool {
		all = append(all, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return dedupe(all), nil
}

// Find returns the first enumerated window matching q, short-circuiting the
// walk on the first hit. With an empty Query it returns the frontmost
// visible, titled window.
func Find(q Query) (Snapshot, bool, error) {
	var hit Snapshot
	found := false
	err := walk(func(s Snapshot) bool {
		if q.matches(s) {
			hit = s
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	return hit, found, nil
}

func dedupe(in []Snapshot) []Snapshot {
	type key struct{ proc, title string }
	seen := make(map[key]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		k := key{s.ProcessName, s.Title}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

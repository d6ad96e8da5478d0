package winhost

import (
	"fmt"

	"github.com/rs/zerolog"

	"winhost/input"
	"winhost/reparent"
	"winhost/window"
)

// Platform is the capability-checked strategy a Manager drives. One
// implementation exists per platform; a platform lacking a cross-process
// reparenting primitive implements Embed and Unembed as immediate
// ErrEmbedNotSupported failures while keeping Enumerate and Find fully
// functional.
type Platform interface {
	Enumerate() ([]window.Snapshot, error)
	Find(window.Query) (window.Snapshot, bool, error)
	Embed(child, parent window.Handle) error
	Unembed(window.Handle) error
}

// osPlatform is the live OS implementation.
type osPlatform struct{}

func (osPlatform) Enumerate() ([]window.Snapshot, error) {
	return window.List()
}

func (osPlatform) Find(q window.Query) (window.Snapshot, bool, error) {
	return window.Find(q)
}

func (osPlatform) Embed(child, parent window.Handle) error {
	return reparent.Attach(child, parent)
}

func (osPlatform) Unembed(h window.Handle) error {
	return reparent.Detach(h)
}

// EmbedOptions selects the window to embed and the surface receiving it.
// ProcessName and WindowTitle are optional substring criteria; the first
// enumerated window matching both is taken. ContainerID, when non-empty, is
// the key under which the embedding is tracked for a later UnembedWindow.
type EmbedOptions struct {
	ContainerID string
	ProcessName string
	WindowTitle string
	Parent      window.Handle
}

// Manager is the call surface over window discovery, embedding, and input
// synthesis. Construct one with New and pass it by reference; it owns the
// embedding registry, so all embed/unembed calls for one registry must go
// through the same Manager.
//
// Every operation is synchronous and issues blocking OS calls with no
// timeout. Manager is not safe for concurrent use.
type Manager struct {
	platform Platform
	registry *reparent.Registry
	syn      *input.Synthesizer
	log      zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithPlatform replaces the live OS platform, for tests or remoting.
func WithPlatform(p Platform) Option {
	return func(m *Manager) { m.platform = p }
}

// New returns a Manager with an empty embedding registry.
func New(opts ...Option) *Manager {
	m := &Manager{
		platform: osPlatform{},
		registry: reparent.NewRegistry(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.syn = input.New(input.WithLogger(m.log))
	return m
}

// WindowList enumerates all visible, titled top-level windows, front to
// back, deduplicated by (process name, title). The list is re-walked on
// every call; snapshots are stale the moment they are returned.
func (m *Manager) WindowList() ([]window.Snapshot, error) {
	return m.platform.Enumerate()
}

// FindWindow returns the first enumerated window matching q. An empty Query
// matches the frontmost visible, titled window.
func (m *Manager) FindWindow(q window.Query) (window.Snapshot, bool, error) {
	return m.platform.Find(q)
}

// EmbedWindow finds the window matching opts, reparents it into the parent
// surface, and records it under opts.ContainerID. Discovery and the embed
// happen in one call, but the found handle is still liveness-checked by the
// platform at embed time. A failed embed leaves the registry untouched.
func (m *Manager) EmbedWindow(opts EmbedOptions) (window.Handle, error) {
	q := window.Query{ProcessName: opts.ProcessName, Title: opts.WindowTitle}
	snap, found, err := m.platform.Find(q)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrWindowNotFound
	}
	if opts.Parent == 0 {
		return 0, ErrParentRequired
	}

	if err := m.platform.Embed(snap.Handle, opts.Parent); err != nil {
		return 0, fmt.Errorf("embed %q: %w", snap.Title, err)
	}

	if opts.ContainerID != "" {
		m.registry.Put(opts.ContainerID, snap.Handle)
	}
	m.log.Debug().
		Str("container", opts.ContainerID).
		Str("process", snap.ProcessName).
		Str("title", snap.Title).
		Uint64("handle", uint64(snap.Handle)).
		Msg("window embedded")
	return snap.Handle, nil
}

// UnembedWindow detaches the window recorded under containerID back to the
// top level and removes the registry entry. The entry survives a failed
// detach so the caller can retry or clean up explicitly.
func (m *Manager) UnembedWindow(containerID string) error {
	h, ok := m.registry.Get(containerID)
	if !ok {
		return ErrNotEmbedded
	}
	if err := m.platform.Unembed(h); err != nil {
		return fmt.Errorf("unembed %q: %w", containerID, err)
	}
	m.registry.Remove(containerID)
	m.log.Debug().Str("container", containerID).Msg("window unembedded")
	return nil
}

// InjectMouseEvent synthesizes ev into the system input queue.
func (m *Manager) InjectMouseEvent(ev input.MouseEvent) error {
	return m.syn.Mouse(ev)
}

// InjectKeyboardEvent synthesizes ev into the system input queue.
func (m *Manager) InjectKeyboardEvent(ev input.KeyboardEvent) error {
	return m.syn.Keyboard(ev)
}

package winhost

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"winhost/reparent"
	"winhost/window"
)

// fakePlatform implements Platform over a fixed window list and records
// every embed/unembed call.
type fakePlatform struct {
	snaps      []window.Snapshot
	embedErr   error
	unembedErr error
	embeds     [][2]window.Handle
	unembeds   []window.Handle
}

func (p *fakePlatform) Enumerate() ([]window.Snapshot, error) {
	return p.snaps, nil
}

func (p *fakePlatform) Find(q window.Query) (window.Snapshot, bool, error) {
	for _, s := range p.snaps {
		if strings.Contains(s.ProcessName, q.ProcessName) && strings.Contains(s.Title, q.Title) {
			return s, true, nil
		}
	}
	return window.Snapshot{}, false, nil
}

func (p *fakePlatform) Embed(child, parent window.Handle) error {
	if p.embedErr != nil {
		return p.embedErr
	}
	p.embeds = append(p.embeds, [2]window.Handle{child, parent})
	return nil
}

func (p *fakePlatform) Unembed(h window.Handle) error {
	if p.unembedErr != nil {
		return p.unembedErr
	}
	p.unembeds = append(p.unembeds, h)
	return nil
}

func notepad() window.Snapshot {
	return window.Snapshot{Handle: 77, ProcessName: "notepad.exe", Title: "Untitled - Notepad"}
}

func TestEmbedThenUnembed(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	h, err := m.EmbedWindow(EmbedOptions{
		ContainerID: "pane-1",
		ProcessName: "notepad.exe",
		WindowTitle: "Untitled",
		Parent:      window.Handle(12345),
	})
	require.NoError(t, err)
	require.Equal(t, window.Handle(77), h)
	require.Equal(t, [][2]window.Handle{{77, 12345}}, p.embeds)

	// Discovery still sees the window under the same handle.
	snap, found, err := m.FindWindow(window.Query{ProcessName: "notepad.exe"})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, window.Handle(77), snap.Handle)

	require.NoError(t, m.UnembedWindow("pane-1"))
	require.Equal(t, []window.Handle{77}, p.unembeds)

	// The registry entry is gone; a second unembed is NotFound.
	require.ErrorIs(t, m.UnembedWindow("pane-1"), ErrNotEmbedded)
}

func TestEmbedWindowNotFound(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{
		ContainerID: "pane-1",
		ProcessName: "missing.exe",
		Parent:      window.Handle(12345),
	})
	require.ErrorIs(t, err, ErrWindowNotFound)
	require.Empty(t, p.embeds)
	require.Zero(t, m.registry.Len())
}

func TestEmbedParentRequired(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{ContainerID: "pane-1", ProcessName: "notepad"})
	require.ErrorIs(t, err, ErrParentRequired)
	require.Empty(t, p.embeds)
}

func TestEmbedCapabilityErrorIsDistinct(t *testing.T) {
	p := &fakePlatform{
		snaps:    []window.Snapshot{notepad()},
		embedErr: reparent.ErrNotSupported,
	}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{
		ContainerID: "pane-1",
		ProcessName: "notepad",
		Parent:      window.Handle(1),
	})
	require.ErrorIs(t, err, ErrEmbedNotSupported)
	require.Zero(t, m.registry.Len())
}

func TestEmbedFailureLeavesRegistryUntouched(t *testing.T) {
	p := &fakePlatform{
		snaps:    []window.Snapshot{notepad()},
		embedErr: reparent.ErrWindowGone,
	}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{
		ContainerID: "pane-1",
		ProcessName: "notepad",
		Parent:      window.Handle(1),
	})
	require.ErrorIs(t, err, ErrWindowGone)
	require.Zero(t, m.registry.Len())
}

func TestEmbedWithoutContainerIDIsNotTracked(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	h, err := m.EmbedWindow(EmbedOptions{ProcessName: "notepad", Parent: window.Handle(1)})
	require.NoError(t, err)
	require.Equal(t, window.Handle(77), h)
	require.Zero(t, m.registry.Len())
}

func TestEmbedSameContainerOverwrites(t *testing.T) {
	second := window.Snapshot{Handle: 88, ProcessName: "code.exe", Title: "main.go"}
	p := &fakePlatform{snaps: []window.Snapshot{notepad(), second}}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{ContainerID: "pane", ProcessName: "notepad", Parent: 1})
	require.NoError(t, err)
	_, err = m.EmbedWindow(EmbedOptions{ContainerID: "pane", ProcessName: "code", Parent: 1})
	require.NoError(t, err)

	require.Equal(t, 1, m.registry.Len())
	h, _ := m.registry.Get("pane")
	require.Equal(t, window.Handle(88), h)
}

func TestUnembedFailureKeepsEntry(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	_, err := m.EmbedWindow(EmbedOptions{ContainerID: "pane", ProcessName: "notepad", Parent: 1})
	require.NoError(t, err)

	p.unembedErr = reparent.ErrWindowGone
	require.ErrorIs(t, m.UnembedWindow("pane"), ErrWindowGone)
	require.Equal(t, 1, m.registry.Len())

	// Once the underlying detach works, the entry is removed.
	p.unembedErr = nil
	require.NoError(t, m.UnembedWindow("pane"))
	require.Zero(t, m.registry.Len())
}

func TestFindWindowEmptyQueryReturnsFirst(t *testing.T) {
	first := notepad()
	p := &fakePlatform{snaps: []window.Snapshot{first, {Handle: 88, ProcessName: "code.exe", Title: "x"}}}
	m := New(WithPlatform(p))

	snap, found, err := m.FindWindow(window.Query{})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, first, snap)
}

func TestWindowList(t *testing.T) {
	p := &fakePlatform{snaps: []window.Snapshot{notepad()}}
	m := New(WithPlatform(p))

	list, err := m.WindowList()
	require.NoError(t, err)
	require.Equal(t, p.snaps, list)
}

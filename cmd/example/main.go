// Command example walks the visible window list, finds a target window, and
// demonstrates the embed-or-capture decision a host application makes:
// embed where the platform supports reparenting, otherwise fall back to
// frame capture plus injected input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"winhost"
	"winhost/input"
	"winhost/screen"
	"winhost/window"
)

func main() {
	process := flag.String("process", "", "process name substring to find")
	title := flag.String("title", "", "window title substring to find")
	parent := flag.Uint64("parent", 0, "parent window handle for embedding")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	m := winhost.New(winhost.WithLogger(log))

	list, err := m.WindowList()
	if err != nil {
		log.Fatal().Err(err).Msg("enumerate windows")
	}
	fmt.Printf("%d visible windows:\n", len(list))
	for _, s := range list {
		fmt.Printf("  %-24s %s\n", s.ProcessName, s.Title)
	}

	q := window.Query{ProcessName: *process, Title: *title}
	snap, found, err := m.FindWindow(q)
	if err != nil {
		log.Fatal().Err(err).Msg("find window")
	}
	if !found {
		log.Warn().Str("process", *process).Str("title", *title).Msg("no matching window")
		return
	}
	fmt.Printf("target: %s (%s), handle %#x\n", snap.Title, snap.ProcessName, uintptr(snap.Handle))

	if *parent != 0 {
		h, err := m.EmbedWindow(winhost.EmbedOptions{
			ContainerID: "example",
			ProcessName: *process,
			WindowTitle: *title,
			Parent:      window.Handle(uintptr(*parent)),
		})
		switch {
		case err == nil:
			fmt.Printf("embedded %#x, press enter to detach\n", uintptr(h))
			fmt.Scanln()
			if err := m.UnembedWindow("example"); err != nil {
				log.Error().Err(err).Msg("unembed")
			}
			return
		case errors.Is(err, winhost.ErrEmbedNotSupported):
			log.Warn().Msg("embedding unsupported here, using capture fallback")
		default:
			log.Fatal().Err(err).Msg("embed")
		}
	}

	// Capture fallback: grab one frame of the target and click into it.
	img, err := screen.CaptureWindow(snap.Handle)
	if err != nil {
		log.Error().Err(err).Msg("capture window")
	} else {
		b := img.Bounds()
		fmt.Printf("captured %dx%d frame\n", b.Dx(), b.Dy())
	}

	if err := m.InjectMouseEvent(input.MouseEvent{Kind: input.MouseClick, X: 100, Y: 100}); err != nil {
		log.Error().Err(err).Msg("inject click")
	}
	if err := m.InjectKeyboardEvent(input.KeyboardEvent{Kind: input.KeyDown, Key: "Enter"}); err != nil {
		log.Error().Err(err).Msg("inject key")
	}
}

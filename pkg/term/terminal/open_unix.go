// ABOUTME: Unix handle acquisition: termios raw mode and a non-blocking stream reader on one tty
// ABOUTME: Falls back to /dev/tty when the requested input is not a terminal

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"

	pilog "github.com/mauromedda/termctl/internal/log"
	"github.com/mauromedda/termctl/pkg/term/rawmode"
	"github.com/mauromedda/termctl/pkg/term/reader"
)

const controllingTTY = "/dev/tty"

type handles struct {
	raw   rawModeCloser
	in    reader.ReadCloser
	owned *os.File
}

func openHandles(input *os.File) (handles, error) {
	var h handles
	if input == nil {
		input = os.Stdin
	}
	if !term.IsTerminal(int(input.Fd())) {
		tty, err := os.OpenFile(controllingTTY, os.O_RDWR, 0)
		if err != nil {
			return h, fmt.Errorf("opening %s: %w", controllingTTY, rawmode.ErrNotTerminal)
		}
		pilog.Debug("terminal: input is not a tty, using %s", controllingTTY)
		input = tty
		h.owned = tty
	}

	raw, err := rawmode.NewFromFile(input)
	if err != nil {
		h.closeOwned()
		return handles{}, fmt.Errorf("opening raw mode: %w", err)
	}
	in, err := reader.NewStreamReader(input)
	if err != nil {
		h.closeOwned()
		return handles{}, fmt.Errorf("opening input reader: %w", err)
	}
	h.raw = raw
	h.in = in
	return h, nil
}

func (h handles) closeOwned() {
	if h.owned != nil {
		_ = h.owned.Close()
	}
}

// ABOUTME: Handle acquisition on platforms without a Unix tty: the console's standard input handle
// ABOUTME: Windows gets the console-mode device and the console event reader

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"fmt"
	"os"

	"github.com/mauromedda/termctl/pkg/term/rawmode"
	"github.com/mauromedda/termctl/pkg/term/reader"
)

type handles struct {
	raw   rawModeCloser
	in    reader.ReadCloser
	owned *os.File
}

func openHandles(_ *os.File) (handles, error) {
	raw, err := rawmode.New()
	if err != nil {
		return handles{}, fmt.Errorf("opening raw mode: %w", err)
	}
	in, err := reader.New()
	if err != nil {
		return handles{}, fmt.Errorf("opening input reader: %w", err)
	}
	return handles{raw: raw, in: in}, nil
}

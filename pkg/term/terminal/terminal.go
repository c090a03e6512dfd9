// ABOUTME: Defines the Terminal interface: raw mode, polled input, size discovery, output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

// Package terminal is the facade over rawmode, reader and info. Callers get
// one object that switches raw mode, polls input, and reports the size,
// whichever OS input model sits underneath.
package terminal

import (
	"context"
	"errors"
	"runtime"

	"github.com/mauromedda/termctl/pkg/term/info"
)

// ErrClosed is returned by operations on a terminal after Close.
var ErrClosed = errors.New("terminal: closed")

// Terminal abstracts low-level terminal operations: raw mode,
// non-blocking input, size queries, output writing, and resize
// notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	IsRawMode() bool
	// ReadInput returns the input that arrived since the last call, or nil.
	// It never blocks.
	ReadInput() ([]byte, error)
	// Size reports the terminal geometry; ok is false when it is unknown.
	Size(ctx context.Context) (size info.Size, ok bool)
	Write(p []byte) (n int, err error)
	OnResize(fn func(info.Size))
	Close() error
}

// IsWindows reports whether the program runs on the Windows family, which
// selects the console input model and the `mode` size probe.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

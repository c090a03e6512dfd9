// ABOUTME: SizeFromFdProvider asks the OS for the window size of a terminal descriptor
// ABOUTME: Uses x/term GetSize (TIOCGWINSZ on Unix, console screen buffer on Windows)

package info

import (
	"context"

	"golang.org/x/term"
)

// SizeFromFdProvider answers KindSize with a direct syscall on fd.
type SizeFromFdProvider struct {
	fd      int
	getSize func(fd int) (width, height int, err error)
}

// NewSizeFromFdProvider returns a provider querying fd.
func NewSizeFromFdProvider(fd int) *SizeFromFdProvider {
	return &SizeFromFdProvider{fd: fd, getSize: term.GetSize}
}

// For implements Provider.
func (p *SizeFromFdProvider) For(_ context.Context, kind Kind) Information {
	if kind != KindSize {
		return nil
	}
	w, h, err := p.getSize(p.fd)
	if err != nil || w <= 0 || h <= 0 {
		return nil
	}
	return Size{Rows: h, Cols: w}
}

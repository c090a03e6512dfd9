// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays scripted input chunks, captures output, and tracks raw-mode enter/exit calls.

package terminal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/termctl/pkg/term/info"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	size       info.Size
	input      [][]byte
	inputEOF   bool
	rawMode    bool
	closed     bool
	resizeFn   func(info.Size)
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{
		size: info.Size{Rows: rows, Cols: cols},
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	if !v.rawMode {
		v.rawMode = true
		v.enterCount++
	}
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rawMode {
		v.rawMode = false
		v.exitCount++
	}
	return nil
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// ReadInput returns the next scripted chunk, nil when none is queued, or
// io.EOF once CloseInput was called and the queue is empty.
func (v *VirtualTerminal) ReadInput() ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, ErrClosed
	}
	if len(v.input) == 0 {
		if v.inputEOF {
			return nil, io.EOF
		}
		return nil, nil
	}
	chunk := v.input[0]
	v.input = v.input[1:]
	return chunk, nil
}

// Size returns the configured dimensions; ok is false when either is zero.
func (v *VirtualTerminal) Size(_ context.Context) (info.Size, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.size.Rows <= 0 || v.size.Cols <= 0 {
		return info.Size{}, false
	}
	return v.size, true
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(info.Size)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// Close leaves raw mode and rejects further input reads.
func (v *VirtualTerminal) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.rawMode {
		v.rawMode = false
		v.exitCount++
	}
	v.closed = true
	return nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input chunks; each ReadInput returns one of them.
func (v *VirtualTerminal) Feed(chunks ...[]byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range chunks {
		v.input = append(v.input, bytes.Clone(c))
	}
}

// CloseInput marks the end of the scripted input stream.
func (v *VirtualTerminal) CloseInput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.inputEOF = true
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// EnterCount returns how many times raw mode was entered.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times raw mode was left.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(cols, rows int) {
	v.mu.Lock()
	v.size = info.Size{Rows: rows, Cols: cols}
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(info.Size{Rows: rows, Cols: cols})
	}
}

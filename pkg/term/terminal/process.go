// ABOUTME: ProcessTerminal implements Terminal over a real console: one raw mode, one reader, one size chain.
// ABOUTME: Concurrent size lookups are coalesced; platform files supply devices and resize handling.

package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	pilog "github.com/mauromedda/termctl/internal/log"
	"github.com/mauromedda/termctl/pkg/term/info"
	"github.com/mauromedda/termctl/pkg/term/process"
	"github.com/mauromedda/termctl/pkg/term/rawmode"
	"github.com/mauromedda/termctl/pkg/term/reader"
)

// Options configures NewProcessTerminal. The zero value uses the process's
// standard streams and the default provider order.
type Options struct {
	// Input is the terminal whose mode is switched and whose input is read.
	// Ignored on Windows, where the console input handle is always used.
	Input *os.File
	// Output receives Write and is queried by the fd size strategy.
	Output *os.File
	// Runner executes probe commands (stty, mode).
	Runner process.Runner
	// Providers lists size strategies by name, in priority order.
	Providers []string
	// Sizes replaces the provider chain entirely.
	Sizes info.Provider
	// SizeTimeout bounds one shared size lookup. Zero means
	// process.DefaultTimeout.
	SizeTimeout time.Duration
}

type rawModeCloser interface {
	rawmode.RawMode
	io.Closer
}

// ProcessTerminal is a real terminal backed by OS handles.
type ProcessTerminal struct {
	mu         sync.Mutex
	raw        rawModeCloser
	in         reader.ReadCloser
	out        *os.File
	owned      *os.File // controlling tty opened on our behalf
	sizes      info.Provider
	sizeWait   time.Duration
	lookups    singleflight.Group
	resizeFn   func(info.Size)
	stopResize func()
	closed     bool
}

// NewProcessTerminal acquires the terminal handles and builds the size
// chain. It does not change the terminal mode.
func NewProcessTerminal(opts Options) (*ProcessTerminal, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	sizes := opts.Sizes
	if sizes == nil {
		runner := opts.Runner
		if runner == nil {
			runner = process.NewExecRunner(process.DefaultTimeout)
		}
		names := opts.Providers
		if len(names) == 0 {
			names = info.DefaultOrder(IsWindows())
		}
		chain, err := info.ChainFromNames(names, runner, int(out.Fd()))
		if err != nil {
			return nil, fmt.Errorf("building size providers: %w", err)
		}
		sizes = chain
	}

	h, err := openHandles(opts.Input)
	if err != nil {
		return nil, err
	}

	sizeWait := opts.SizeTimeout
	if sizeWait <= 0 {
		sizeWait = process.DefaultTimeout
	}

	return &ProcessTerminal{
		raw:      h.raw,
		in:       h.in,
		out:      out,
		owned:    h.owned,
		sizes:    sizes,
		sizeWait: sizeWait,
	}, nil
}

// EnterRawMode switches the input terminal to raw mode, saving the
// previous settings.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if err := t.raw.Enable(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	return nil
}

// ExitRawMode restores the settings saved by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.raw.Disable(); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	return nil
}

// IsRawMode reports whether raw mode is active.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.raw.IsEnabled()
}

// ReadInput polls the reader once. The lock is held across the read so
// Close cannot put the descriptor back into blocking mode underneath it.
func (t *ProcessTerminal) ReadInput() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, ErrClosed
	}
	return t.in.Read()
}

// Size asks the provider chain for the terminal size. Callers that ask
// while a lookup is running share its result. The shared lookup is bounded
// by the size timeout, not by any one caller's ctx; each caller stops
// waiting when its own ctx is done.
func (t *ProcessTerminal) Size(ctx context.Context) (info.Size, bool) {
	ch := t.lookups.DoChan("size", func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.sizeWait)
		defer cancel()

		size, ok := info.SizeOf(lookupCtx, t.sizes)
		if !ok {
			return nil, nil
		}
		return size, nil
	})

	select {
	case res := <-ch:
		size, ok := res.Val.(info.Size)
		return size, ok
	case <-ctx.Done():
		return info.Size{}, false
	}
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked with the new size when the
// terminal is resized. Platform-specific signal handling is set up by
// startResizeListener on the first call.
func (t *ProcessTerminal) OnResize(fn func(info.Size)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeFn = fn
	if t.stopResize == nil && !t.closed {
		t.stopResize = t.startResizeListener()
	}
}

func (t *ProcessTerminal) resizeCallback() func(info.Size) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.resizeFn
}

// Close stops the resize listener, restores the terminal mode, and
// releases the input handle. Failures are logged, never returned.
func (t *ProcessTerminal) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	stop := t.stopResize
	t.stopResize = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
	if t.raw.IsEnabled() {
		if err := t.raw.Disable(); err != nil {
			pilog.Warn("terminal: restore on close: %v", err)
		}
	}
	_ = t.raw.Close()
	if err := t.in.Close(); err != nil {
		pilog.Warn("terminal: close input: %v", err)
	}
	if t.owned != nil {
		_ = t.owned.Close()
	}
	return nil
}

// ABOUTME: Unix-specific SIGWINCH handling for ProcessTerminal resize events.
// ABOUTME: Spawns a goroutine that re-queries the size chain and invokes the resize callback.

//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// startResizeListener sets up a SIGWINCH handler that calls the resize
// callback with the new terminal size. The returned func stops it.
func (t *ProcessTerminal) startResizeListener() func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		defer RecoverGoroutine(t)
		for {
			select {
			case <-done:
				return
			case <-sigCh:
			}

			fn := t.resizeCallback()
			if fn == nil {
				continue
			}
			size, ok := t.Size(context.Background())
			if !ok {
				continue
			}
			fn(size)
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

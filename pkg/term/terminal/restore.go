// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

const showCursor = "\033[?25h"

// Replaced in tests.
var (
	panicOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it shows the cursor,
// exits raw mode via the provided Terminal, prints the panic value
// and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(panicOutput, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}

// restore is best effort: the terminal may already be half torn down.
func restore(t Terminal) {
	_, _ = t.Write([]byte(showCursor))
	_ = t.ExitRawMode()
}

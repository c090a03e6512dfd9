// ABOUTME: Resize handling stub for platforms without SIGWINCH.
// ABOUTME: Windows reports buffer-size changes as console events, which the reader discards.

//go:build !unix

package terminal

// startResizeListener is a no-op; callers poll Size instead.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}

// ABOUTME: Windows console-mode flag arithmetic, kept platform-neutral for testing
// ABOUTME: RawConsoleMode clears the line, echo, and processed-input bits

package rawmode

// Console input mode flags (SetConsoleMode).
const (
	ConsoleProcessedInput uint32 = 0x0001
	ConsoleLineInput      uint32 = 0x0002
	ConsoleEchoInput      uint32 = 0x0004

	// NotRawModeMask is every bit that must be clear for raw input.
	NotRawModeMask = ConsoleLineInput | ConsoleEchoInput | ConsoleProcessedInput
)

// RawConsoleMode returns mode with the cooked bits cleared. All other bits
// (mouse, window, virtual terminal input...) pass through untouched.
func RawConsoleMode(mode uint32) uint32 {
	return mode &^ NotRawModeMask
}

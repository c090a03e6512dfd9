// ABOUTME: Tests for the console raw-mode flag arithmetic
// ABOUTME: Pure bit manipulation, runs on every platform

package rawmode

import "testing"

func TestRawConsoleMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{name: "default cooked", in: 0x1F7, want: 0x1F0},
		{name: "already raw", in: 0x1F0, want: 0x1F0},
		{name: "only cooked bits", in: NotRawModeMask, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "vt input kept", in: 0x200 | ConsoleEchoInput, want: 0x200},
		{name: "all bits", in: 0xFFFFFFFF, want: 0xFFFFFFF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RawConsoleMode(tt.in); got != tt.want {
				t.Errorf("RawConsoleMode(%#x) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

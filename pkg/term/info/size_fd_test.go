// ABOUTME: Tests for the descriptor size provider
// ABOUTME: Uses a fake size func and a real pseudo-terminal when one is available

package info

import (
	"context"
	"errors"
	"testing"

	"github.com/creack/pty"
)

func TestSizeFromFdProvider_Fake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		err  error
		want Information
	}{
		{"size", 100, 40, nil, Size{Rows: 40, Cols: 100}},
		{"zero size", 0, 0, nil, nil},
		{"zero width", 0, 24, nil, nil},
		{"error", 80, 24, errors.New("inappropriate ioctl for device"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &SizeFromFdProvider{fd: 1, getSize: func(int) (int, int, error) {
				return tt.w, tt.h, tt.err
			}}
			if got := p.For(context.Background(), KindSize); got != tt.want {
				t.Errorf("For(KindSize) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeFromFdProvider_Pty(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 37, Cols: 111}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	got := NewSizeFromFdProvider(int(tty.Fd())).For(context.Background(), KindSize)
	if want := (Size{Rows: 37, Cols: 111}); got != want {
		t.Errorf("For(KindSize) = %v, want %v", got, want)
	}
}

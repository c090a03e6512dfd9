// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, scripted input, output capture, and resize.
// ABOUTME: Uses table-driven and parallel sub-tests for thorough coverage.

package terminal

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mauromedda/termctl/pkg/term/info"
)

// compile-time checks: both implementations satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestIsWindows(t *testing.T) {
	t.Parallel()

	if got, want := IsWindows(), runtime.GOOS == "windows"; got != want {
		t.Errorf("IsWindows() = %v, want %v", got, want)
	}
}

func TestNewProcessTerminal_UnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := NewProcessTerminal(Options{Providers: []string{"fd", "telepathy"}})
	if err == nil {
		t.Fatal("expected error for unknown provider name")
	}
}

func TestProcessTerminal_SizeSurvivesCanceledFirstCaller(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var slowCalls, hits atomic.Int32
	slow := info.ProviderFunc(func(context.Context, info.Kind) info.Information {
		if slowCalls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return nil
	})
	hit := info.ProviderFunc(func(context.Context, info.Kind) info.Information {
		hits.Add(1)
		return info.Size{Rows: 24, Cols: 80}
	})
	pt := &ProcessTerminal{sizes: info.Chain{slow, hit}, sizeWait: 5 * time.Second}

	ctxA, cancelA := context.WithCancel(context.Background())
	doneA := make(chan bool, 1)
	go func() {
		_, ok := pt.Size(ctxA)
		doneA <- ok
	}()
	<-entered

	type result struct {
		size info.Size
		ok   bool
	}
	doneB := make(chan result, 1)
	go func() {
		s, ok := pt.Size(context.Background())
		doneB <- result{s, ok}
	}()

	cancelA()
	select {
	case ok := <-doneA:
		if ok {
			t.Error("canceled caller got ok = true")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("canceled caller still waiting on the shared lookup")
	}

	// Give the second caller time to join the in-flight lookup.
	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case r := <-doneB:
		if want := (info.Size{Rows: 24, Cols: 80}); !r.ok || r.size != want {
			t.Errorf("live caller Size() = (%v, %v), want %v", r.size, r.ok, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("live caller never got a size")
	}
	if hits.Load() == 0 {
		t.Error("provider after the slow one was never asked")
	}
}

func TestProcessTerminal_SizeTimeoutBoundsLookup(t *testing.T) {
	t.Parallel()

	stuck := info.ProviderFunc(func(ctx context.Context, _ info.Kind) info.Information {
		<-ctx.Done()
		return nil
	})
	pt := &ProcessTerminal{sizes: stuck, sizeWait: 20 * time.Millisecond}

	done := make(chan bool, 1)
	go func() {
		_, ok := pt.Size(context.Background())
		done <- ok
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Size() ok = true from a provider that never answers")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("size lookup not bounded by the size timeout")
	}
}

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cols   int
		rows   int
		want   info.Size
		wantOK bool
	}{
		{name: "standard 80x24", cols: 80, rows: 24, want: info.Size{Rows: 24, Cols: 80}, wantOK: true},
		{name: "wide 200x50", cols: 200, rows: 50, want: info.Size{Rows: 50, Cols: 200}, wantOK: true},
		{name: "zero dimensions", cols: 0, rows: 0, want: info.Size{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.cols, tt.rows)

			got, ok := vt.Size(context.Background())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Size() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}

	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("second EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}

	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("second ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestVirtualTerminal_MultipleRawModeTransitions(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	for i := range 3 {
		if err := vt.EnterRawMode(); err != nil {
			t.Fatalf("iteration %d: EnterRawMode() error: %v", i, err)
		}
		if err := vt.ExitRawMode(); err != nil {
			t.Fatalf("iteration %d: ExitRawMode() error: %v", i, err)
		}
	}

	if vt.EnterCount() != 3 {
		t.Errorf("EnterCount() = %d, want 3", vt.EnterCount())
	}
	if vt.ExitCount() != 3 {
		t.Errorf("ExitCount() = %d, want 3", vt.ExitCount())
	}
}

func TestVirtualTerminal_ReadInput(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if got, err := vt.ReadInput(); got != nil || err != nil {
		t.Fatalf("ReadInput() on empty = (%q, %v), want (nil, nil)", got, err)
	}

	vt.Feed([]byte("a"), []byte("\x1b[A"))
	vt.CloseInput()

	for _, want := range []string{"a", "\x1b[A"} {
		got, err := vt.ReadInput()
		if err != nil {
			t.Fatalf("ReadInput() unexpected error: %v", err)
		}
		if string(got) != want {
			t.Errorf("ReadInput() = %q, want %q", got, want)
		}
	}

	for range 2 {
		if _, err := vt.ReadInput(); !errors.Is(err, io.EOF) {
			t.Errorf("ReadInput() after CloseInput = %v, want io.EOF", err)
		}
	}
}

func TestVirtualTerminal_Write(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	data := []byte("hello, terminal")
	n, err := vt.Write(data)
	if err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if n != len(data) {
		t.Errorf("Write() returned n=%d, want %d", n, len(data))
	}
	if _, err := vt.Write([]byte("!")); err != nil {
		t.Fatal(err)
	}
	if got := vt.Output(); got != "hello, terminal!" {
		t.Errorf("Output() = %q, want %q", got, "hello, terminal!")
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_OnResize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var got info.Size
	vt.OnResize(func(s info.Size) {
		got = s
	})

	vt.SetSize(120, 40)

	want := info.Size{Rows: 40, Cols: 120}
	if got != want {
		t.Errorf("resize callback got %v, want %v", got, want)
	}

	// Size should also reflect the new dimensions.
	if s, ok := vt.Size(context.Background()); !ok || s != want {
		t.Errorf("Size() after SetSize = (%v, %v), want %v", s, ok, want)
	}
}

func TestVirtualTerminal_SetSizeWithoutCallback(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	// Should not panic when no callback is registered.
	vt.SetSize(100, 50)

	if s, ok := vt.Size(context.Background()); !ok || s != (info.Size{Rows: 50, Cols: 100}) {
		t.Errorf("Size() = (%v, %v), want 100x50", s, ok)
	}
}

func TestVirtualTerminal_Close(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	_ = vt.EnterRawMode()
	vt.Feed([]byte("x"))

	if err := vt.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Error("Close() left raw mode on")
	}
	if _, err := vt.ReadInput(); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadInput() after Close = %v, want ErrClosed", err)
	}
	if err := vt.EnterRawMode(); !errors.Is(err, ErrClosed) {
		t.Errorf("EnterRawMode() after Close = %v, want ErrClosed", err)
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 4)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _ = vt.Size(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = vt.EnterRawMode()
			_ = vt.ExitRawMode()
		}()
		go func() {
			defer wg.Done()
			vt.Feed([]byte("k"))
			_, _ = vt.ReadInput()
		}()
	}

	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
	if vt.EnterCount() != vt.ExitCount() {
		t.Errorf("EnterCount() = %d, ExitCount() = %d; want equal", vt.EnterCount(), vt.ExitCount())
	}
}

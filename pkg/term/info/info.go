// ABOUTME: Terminal information kinds, the Provider capability, and the Chain aggregator
// ABOUTME: Providers return nil for unknown kinds or failed strategies; Chain takes the first hit

// Package info discovers terminal capabilities through an ordered chain of
// independent strategies.
//
// A Provider answers For(ctx, kind). It returns nil straight away for kinds
// it does not handle, and nil when its strategy fails in this environment.
// Failure is expected when strategies are chained, so it is never an error.
package info

import (
	"context"
	"fmt"

	pilog "github.com/mauromedda/termctl/internal/log"
)

// Kind tags a request for a piece of terminal information.
type Kind int

const (
	// KindSize requests a Size.
	KindSize Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Information is a result of a provider lookup.
type Information interface {
	Kind() Kind
}

// Size is the visible terminal geometry in character cells.
type Size struct {
	Rows int
	Cols int
}

// Kind implements Information.
func (Size) Kind() Kind { return KindSize }

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// newClampedSize builds a Size with negative dimensions raised to zero.
func newClampedSize(rows, cols int) Size {
	return Size{Rows: max(0, rows), Cols: max(0, cols)}
}

// Provider answers requests for a single Kind of information, or nil.
type Provider interface {
	For(ctx context.Context, kind Kind) Information
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, kind Kind) Information

// For calls f(ctx, kind).
func (f ProviderFunc) For(ctx context.Context, kind Kind) Information {
	return f(ctx, kind)
}

// Chain tries each provider in order and returns the first non-nil result.
type Chain []Provider

// For implements Provider. It returns nil when every provider misses or
// ctx is done.
func (c Chain) For(ctx context.Context, kind Kind) Information {
	for i, p := range c {
		if ctx.Err() != nil {
			return nil
		}
		if result := p.For(ctx, kind); result != nil {
			pilog.Debug("info: %s resolved by provider %d (%T)", kind, i, p)
			return result
		}
		pilog.Debug("info: provider %d (%T) has no %s", i, p, kind)
	}
	return nil
}

// SizeOf asks p for the terminal size. ok is false when no provider could
// determine it.
func SizeOf(ctx context.Context, p Provider) (size Size, ok bool) {
	result := p.For(ctx, KindSize)
	if result == nil {
		return Size{}, false
	}
	size, ok = result.(Size)
	return size, ok
}

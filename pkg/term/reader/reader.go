// ABOUTME: Reader capability: non-blocking poll for the next input chunk
// ABOUTME: Defines ReadError and the platform-independent contract shared by all readers

// Package reader polls terminal input without blocking.
//
// Two OS input models sit behind one contract. On Unix the input is a byte
// stream switched to non-blocking mode and drained on every call. On Windows
// the input is a queue of structured console events that is reduced to the
// most recent typed character.
//
// Read returns (nil, nil) when nothing is available; callers poll it from
// their own loop.
package reader

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupported is returned by New on platforms without an input reader.
var ErrUnsupported = errors.New("reader: platform not supported")

// Reader returns the input that arrived since the previous call, or nil
// when there is none. It never blocks.
type Reader interface {
	Read() ([]byte, error)
}

// ReadCloser is a Reader that owns an OS handle.
type ReadCloser interface {
	Reader
	io.Closer
}

// ReadError reports an OS failure while polling input.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reader: failed to %s: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

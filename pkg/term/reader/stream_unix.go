// ABOUTME: StreamReader drains a non-blocking Unix file descriptor on each Read
// ABOUTME: Distinguishes "nothing yet" (nil, nil) from end of stream (nil, io.EOF)

//go:build unix

package reader

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mauromedda/termctl/internal/pool"
)

// StreamReader implements Reader over a byte stream.
type StreamReader struct {
	file    *os.File // keeps fd open
	fd      int
	pending error // reported on the next Read after data was returned
}

// New returns a StreamReader over the process's standard input.
func New() (ReadCloser, error) {
	return NewStreamReader(os.Stdin)
}

// NewStreamReader switches f to non-blocking mode and returns a reader
// over it. f must stay open while the reader is in use.
func NewStreamReader(f *os.File) (*StreamReader, error) {
	if f == nil {
		return nil, &ReadError{Op: "open input", Err: os.ErrInvalid}
	}
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, &ReadError{Op: "set non-blocking mode", Err: err}
	}
	return &StreamReader{file: f, fd: fd}, nil
}

// Read drains every byte currently buffered by the OS. It returns
// (nil, nil) when nothing is buffered and (nil, io.EOF) once the stream is
// closed. Bytes read before end of stream are returned first; EOF follows
// on the next call and on every call after it.
func (r *StreamReader) Read() ([]byte, error) {
	if r.pending != nil {
		err := r.pending
		if err != io.EOF {
			r.pending = nil
		}
		return nil, err
	}

	bp := pool.GetReadBuffer()
	defer pool.PutReadBuffer(bp)
	buf := *bp

	var out []byte
	for {
		n, err := unix.Read(r.fd, buf)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EWOULDBLOCK):
			return out, nil
		case err != nil:
			rerr := &ReadError{Op: "read input", Err: err}
			if len(out) > 0 {
				r.pending = rerr
				return out, nil
			}
			return nil, rerr
		case n == 0:
			r.pending = io.EOF
			if len(out) > 0 {
				return out, nil
			}
			return nil, io.EOF
		}
		out = append(out, buf[:n]...)
	}
}

// Close puts the descriptor back into blocking mode. It does not close
// the file.
func (r *StreamReader) Close() error {
	if err := unix.SetNonblock(r.fd, false); err != nil {
		return &ReadError{Op: "restore blocking mode", Err: err}
	}
	return nil
}

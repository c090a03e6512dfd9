// ABOUTME: POSIX termios device and raw transform for Mode
// ABOUTME: Reads/writes the full termios struct via ioctl on the tty file descriptor

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package rawmode

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// NativeMode is the snapshot type on this platform.
type NativeMode = unix.Termios

// RawTermios clears line buffering (ICANON), echo (ECHO, ECHONL), and input
// preprocessing (ISIG, IEXTEN and the Iflag translations), then asks for
// byte-at-a-time reads. Output post-processing is left on.
func RawTermios(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

type termiosDevice struct {
	fd   int
	file *os.File // keeps the descriptor open for the device's lifetime
}

func (d termiosDevice) Mode() (unix.Termios, error) {
	t, err := unix.IoctlGetTermios(d.fd, ioctlReadTermios)
	if err != nil {
		return unix.Termios{}, wrapErrno(err)
	}
	return *t, nil
}

func (d termiosDevice) SetMode(t unix.Termios) error {
	return wrapErrno(unix.IoctlSetTermios(d.fd, ioctlWriteTermios, &t))
}

func wrapErrno(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.ENOTTY) {
		return fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	return err
}

// New returns a Mode over the process's standard input.
func New() (*Mode[NativeMode], error) {
	return NewFromFile(os.Stdin)
}

// NewFromFile returns a Mode over f. f must stay open while the Mode is in
// use; Close does not close it.
func NewFromFile(f *os.File) (*Mode[NativeMode], error) {
	if f == nil {
		return nil, &ModeAccessError{Op: OpHandle, Err: os.ErrInvalid}
	}
	dev := termiosDevice{fd: int(f.Fd()), file: f}
	return NewWithDevice[NativeMode](dev, RawTermios), nil
}

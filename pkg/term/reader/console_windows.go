// ABOUTME: kernel32 console input queue backing ConsoleReader on Windows
// ABOUTME: Calls GetNumberOfConsoleInputEvents and ReadConsoleInputW on the STD_INPUT handle

//go:build windows

package reader

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetNumberOfConsoleInputEvents = modkernel32.NewProc("GetNumberOfConsoleInputEvents")
	procReadConsoleInputW             = modkernel32.NewProc("ReadConsoleInputW")
)

type consoleQueue struct {
	h windows.Handle
}

func (q consoleQueue) Pending() (uint32, error) {
	var n uint32
	r1, _, e1 := procGetNumberOfConsoleInputEvents.Call(uintptr(q.h), uintptr(unsafe.Pointer(&n)))
	if r1 == 0 {
		return 0, e1
	}
	return n, nil
}

func (q consoleQueue) ReadEvents(buf []InputRecord) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var n uint32
	r1, _, e1 := procReadConsoleInputW.Call(
		uintptr(q.h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&n)))
	if r1 == 0 {
		return 0, e1
	}
	return int(n), nil
}

// New returns a ConsoleReader over the console input handle.
func New() (ReadCloser, error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, &ReadError{Op: "get console handle", Err: err}
	}
	if h == 0 || h == windows.InvalidHandle {
		return nil, &ReadError{Op: "get console handle", Err: windows.ERROR_INVALID_HANDLE}
	}
	return NewConsoleReader(consoleQueue{h: h}), nil
}

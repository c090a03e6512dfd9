// ABOUTME: Windows console-mode device for Mode over the STD_INPUT handle
// ABOUTME: Snapshot is the raw uint32 flag set from GetConsoleMode

//go:build windows

package rawmode

import "golang.org/x/sys/windows"

// NativeMode is the snapshot type on this platform.
type NativeMode = uint32

type consoleDevice struct {
	h windows.Handle
}

func (d consoleDevice) Mode() (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(d.h, &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (d consoleDevice) SetMode(mode uint32) error {
	return windows.SetConsoleMode(d.h, mode)
}

// New returns a Mode over the console input handle.
func New() (*Mode[NativeMode], error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return nil, &ModeAccessError{Op: OpHandle, Err: err}
	}
	if h == 0 || h == windows.InvalidHandle {
		return nil, &ModeAccessError{Op: OpHandle, Err: ErrNotTerminal}
	}
	return NewWithDevice[NativeMode](consoleDevice{h: h}, RawConsoleMode), nil
}

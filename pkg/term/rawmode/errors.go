// ABOUTME: Error types for raw-mode failures: ModeAccessError and sentinels
// ABOUTME: ModeAccessError names the failed operation and wraps the OS error

package rawmode

import (
	"errors"
	"fmt"
)

// Operations reported by ModeAccessError.
const (
	OpHandle  = "handle"
	OpGet     = "get"
	OpSet     = "set"
	OpRestore = "restore"
)

var (
	// ErrNotTerminal is wrapped when the handle does not refer to a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrUnsupported is returned by New on platforms without a raw-mode device.
	ErrUnsupported = errors.New("rawmode: platform not supported")
)

// ModeAccessError reports that the OS refused to report or apply a
// terminal mode.
type ModeAccessError struct {
	Op  string
	Err error
}

func (e *ModeAccessError) Error() string {
	var what string
	switch e.Op {
	case OpHandle:
		what = "failed to get console handle"
	case OpGet:
		what = "failed to get terminal mode"
	case OpSet:
		what = "failed to set terminal to raw mode"
	case OpRestore:
		what = "failed to restore terminal mode"
	default:
		what = "terminal mode " + e.Op + " failed"
	}
	if e.Err == nil {
		return "rawmode: " + what
	}
	return fmt.Sprintf("rawmode: %s: %v", what, e.Err)
}

func (e *ModeAccessError) Unwrap() error {
	return e.Err
}

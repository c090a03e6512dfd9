// ABOUTME: RawMode capability and the generic Mode state machine with guaranteed restore
// ABOUTME: Mode captures a snapshot on Enable, restores it verbatim on Disable/Close/cleanup

// Package rawmode switches a terminal between cooked and raw input mode.
//
// A Mode is built over a Device, which reads and writes the OS terminal mode,
// and a pure transform that clears the cooked bits (line buffering, echo,
// input preprocessing). The mode seen before Enable is kept as a snapshot and
// written back unchanged on Disable:
//
//	m, err := rawmode.New()
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//	if err := m.Enable(); err != nil {
//		return err
//	}
package rawmode

import (
	"runtime"
	"sync"
)

// RawMode is the raw-mode capability exposed to callers.
type RawMode interface {
	Enable() error
	Disable() error
	IsEnabled() bool
}

// Device exposes the OS primitives for reading and applying a terminal
// mode of type M.
type Device[M any] interface {
	Mode() (M, error)
	SetMode(M) error
}

// state is either disabled{} or enabled[M]; the snapshot only exists in
// the enabled variant.
type state interface {
	isState()
}

type disabled struct{}

type enabled[M any] struct {
	snapshot M
}

func (disabled) isState() {}
func (e enabled[M]) isState() {}

// Mode implements RawMode over a Device.
type Mode[M any] struct {
	core *modeCore[M]
}

// modeCore holds everything the cleanup needs. It must never point back at
// the owning Mode or the cleanup would keep it alive forever.
type modeCore[M any] struct {
	mu  sync.Mutex
	dev Device[M]
	raw func(M) M
	st  state
}

// NewWithDevice returns a disabled Mode that uses raw to derive the raw
// mode from the current one. If the Mode is garbage collected while still
// enabled, the snapshot is restored on a best-effort basis.
func NewWithDevice[M any](dev Device[M], raw func(M) M) *Mode[M] {
	core := &modeCore[M]{dev: dev, raw: raw, st: disabled{}}
	m := &Mode[M]{core: core}
	runtime.AddCleanup(m, func(c *modeCore[M]) {
		c.restoreQuietly()
	}, core)
	return m
}

// Enable switches the device to raw mode. It is a no-op when already
// enabled. On failure the device is left as it was.
func (m *Mode[M]) Enable() error {
	c := m.core
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.st.(enabled[M]); ok {
		return nil
	}

	orig, err := c.dev.Mode()
	if err != nil {
		return &ModeAccessError{Op: OpGet, Err: err}
	}
	if err := c.dev.SetMode(c.raw(orig)); err != nil {
		return &ModeAccessError{Op: OpSet, Err: err}
	}
	c.st = enabled[M]{snapshot: orig}
	return nil
}

// Disable restores the snapshot taken by Enable. It is a no-op when not
// enabled. If the restore is rejected the Mode stays enabled so the caller
// can retry or warn the user.
func (m *Mode[M]) Disable() error {
	c := m.core
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disableLocked()
}

func (c *modeCore[M]) disableLocked() error {
	en, ok := c.st.(enabled[M])
	if !ok {
		return nil
	}
	if err := c.dev.SetMode(en.snapshot); err != nil {
		return &ModeAccessError{Op: OpRestore, Err: err}
	}
	c.st = disabled{}
	return nil
}

// IsEnabled reports whether a snapshot is currently held.
func (m *Mode[M]) IsEnabled() bool {
	c := m.core
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.st.(enabled[M])
	return ok
}

// Snapshot returns the mode captured by the last successful Enable, if
// raw mode is still active.
func (m *Mode[M]) Snapshot() (M, bool) {
	c := m.core
	c.mu.Lock()
	defer c.mu.Unlock()
	en, ok := c.st.(enabled[M])
	return en.snapshot, ok
}

// Close attempts to restore the original mode and always returns nil.
// It is safe to call more than once and from a deferred call.
func (m *Mode[M]) Close() error {
	m.core.restoreQuietly()
	return nil
}

func (c *modeCore[M]) restoreQuietly() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.disableLocked()
}

//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd || windows)

package rawmode

// NativeMode is a placeholder on platforms without a raw-mode device.
type NativeMode = struct{}

// New always fails on this platform.
func New() (*Mode[NativeMode], error) {
	return nil, ErrUnsupported
}

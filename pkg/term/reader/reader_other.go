//go:build !(unix || windows)

package reader

// New always fails on this platform.
func New() (ReadCloser, error) {
	return nil, ErrUnsupported
}

//go:build !linux

package led

import "errors"

// RealLight is not available on non-Linux platforms.
type RealLight struct{}

// NewRealLight returns an error on non-Linux platforms.
func NewRealLight(string, int) (*RealLight, error) {
	return nil, errors.New("led: not supported on this platform (requires Linux)")
}

// Set is not implemented on non-Linux platforms.
func (*RealLight) Set(bool) error {
	return errors.New("led: not supported")
}

// Close is not implemented on non-Linux platforms.
func (*RealLight) Close() error {
	return nil
}

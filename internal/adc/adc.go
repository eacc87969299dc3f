// Package adc reads raw keypad levels from an analog-to-digital converter.
// The real implementation reads a Linux IIO channel; the fake one replays
// scripted values for tests.
package adc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultPath is the IIO channel the reference keypad is wired to.
const DefaultPath = "/sys/bus/iio/devices/iio:device0/in_voltage3_raw"

// SysfsReader reads an IIO in_voltageN_raw attribute. The file is kept open
// and re-read from offset zero, which makes the kernel sample the channel again.
type SysfsReader struct {
	file *os.File
	buf  []byte
}

// NewSysfsReader opens the IIO attribute at path.
func NewSysfsReader(path string) (*SysfsReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open adc channel: %w", err)
	}
	return &SysfsReader{file: f, buf: make([]byte, 16)}, nil
}

// Read returns the current raw value.
func (r *SysfsReader) Read() (uint16, error) {
	n, err := r.file.ReadAt(r.buf, 0)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read adc channel: %w", err)
	}
	return parseRaw(r.buf[:n])
}

// Close releases the channel.
func (r *SysfsReader) Close() error {
	return r.file.Close()
}

func parseRaw(b []byte) (uint16, error) {
	v, err := strconv.ParseUint(string(bytes.TrimSpace(b)), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("parse adc value %q: %w", b, err)
	}
	return uint16(v), nil
}

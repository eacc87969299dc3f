//go:build linux

package led

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealLight drives an LED on a GPIO line.
type RealLight struct {
	line *gpiocdev.Line
}

// NewRealLight requests offset on chip as an output, initially off.
func NewRealLight(chip string, offset int) (*RealLight, error) {
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("request led line %s:%d: %w", chip, offset, err)
	}
	return &RealLight{line: line}, nil
}

// Set switches the LED on or off.
func (l *RealLight) Set(on bool) error {
	v := 0
	if on {
		v = 1
	}
	if err := l.line.SetValue(v); err != nil {
		return fmt.Errorf("set led line: %w", err)
	}
	return nil
}

// Close switches the LED off and returns the line to an input with pull-down,
// matching the boot default of the board.
func (l *RealLight) Close() error {
	var errs []error

	if err := l.line.SetValue(0); err != nil {
		errs = append(errs, fmt.Errorf("switch off: %w", err))
	}
	if err := l.line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure: %w", err))
	}
	if err := l.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close line: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// Package led drives the status LED that acknowledges button presses.
// The real implementation uses the Linux GPIO character device.
package led

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
)

// Light is a single on/off indicator.
type Light interface {
	// Set switches the light on or off.
	Set(on bool) error

	// Close releases the underlying line.
	Close() error
}

// Blink switches light on for d and then off again. It returns early, with
// the light switched off, if ctx is cancelled.
func Blink(ctx context.Context, light Light, d time.Duration, clock clockz.Clock) error {
	if err := light.Set(true); err != nil {
		return fmt.Errorf("led on: %w", err)
	}

	select {
	case <-clock.After(d):
	case <-ctx.Done():
	}

	if err := light.Set(false); err != nil {
		return fmt.Errorf("led off: %w", err)
	}
	return nil
}

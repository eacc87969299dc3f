package buttons

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/sensorflow"
)

// Reader reads the raw scalar behind the keypad.
type Reader interface {
	// Read returns the current raw ADC value.
	Read() (uint16, error)

	// Close releases the underlying device.
	Close() error
}

// Updater is the single writer of the shared button state. On every tick it
// reads the raw value, classifies it and stores the result.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Updater struct {
	reader   Reader
	table    Table
	state    *sensorflow.Shared[Buttons]
	clock    sensorflow.Clock
	interval time.Duration
}

// NewUpdater creates a writer task for state.
func NewUpdater(reader Reader, table Table, state *sensorflow.Shared[Buttons], interval time.Duration) *Updater {
	return &Updater{
		reader:   reader,
		table:    table,
		state:    state,
		clock:    sensorflow.RealClock,
		interval: interval,
	}
}

// WithClock sets the clock driving the ticks. Defaults to sensorflow.RealClock.
func (u *Updater) WithClock(clock sensorflow.Clock) *Updater {
	u.clock = clock
	return u
}

// Step performs a single read-classify-store cycle and returns what the
// reading was classified as.
func (u *Updater) Step(ctx context.Context) ([]Type, error) {
	raw, err := u.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read adc: %w", err)
	}

	pressed := u.table.Classify(raw)
	capitan.Emit(ctx, sensorflow.ReadingClassified,
		sensorflow.KeyRaw.Field(int(raw)),
		sensorflow.KeyButtons.Field(Names(pressed)),
	)

	if err := u.state.Update(func(b *Buttons) {
		b.Apply(u.table, raw)
	}); err != nil {
		return nil, err
	}
	return pressed, nil
}

// Run samples until ctx is cancelled, then returns nil. Read failures skip
// the tick. A poisoned state is fatal and is returned.
//
// Run must have returned before the shared state is torn down.
func (u *Updater) Run(ctx context.Context) error {
	ticker := u.clock.NewTicker(u.interval)
	defer ticker.Stop()

	capitan.Emit(ctx, sensorflow.UpdaterStarted, sensorflow.KeyInterval.Field(u.interval))
	defer capitan.Emit(ctx, sensorflow.UpdaterStopped)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C():
			_, err := u.Step(ctx)
			if errors.Is(err, sensorflow.ErrPoisoned) {
				return err
			}
			if err != nil {
				capitan.Emit(ctx, sensorflow.UpdaterReadFailed, sensorflow.KeyError.Field(err.Error()))
			}
		}
	}
}

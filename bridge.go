package sensorflow

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
)

// Bridge turns externally mutated shared state into a stream by sampling it
// once per interval.
//
// Each tick the bridge locks the state, applies the extraction function,
// unlocks, and only then emits the derived value. The lock is never held
// while waiting on a tick or on the consumer.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Bridge[S, T any] struct {
	name     string
	shared   *Shared[S]
	extract  func(S) T
	clock    Clock
	interval time.Duration
}

// NewBridge creates a bridge sampling shared through extract every interval.
//
// Example:
//
//	state := sensorflow.NewShared(buttons.Buttons{})
//	play := sensorflow.NewBridge(state, buttons.Field(buttons.Play), 50*time.Millisecond)
//	samples := play.Process(ctx)
//
// The bridge never ends on its own; cancel ctx to stop it. A poisoned state
// is unrecoverable: the bridge emits one error wrapping ErrPoisoned and closes.
func NewBridge[S, T any](shared *Shared[S], extract func(S) T, interval time.Duration) *Bridge[S, T] {
	return &Bridge[S, T]{
		name:     "bridge",
		shared:   shared,
		extract:  extract,
		clock:    RealClock,
		interval: interval,
	}
}

// WithClock sets the clock driving the ticks. Defaults to RealClock.
func (b *Bridge[S, T]) WithClock(clock Clock) *Bridge[S, T] {
	b.clock = clock
	return b
}

// WithName sets a custom name for this bridge.
// If not set, defaults to "bridge".
func (b *Bridge[S, T]) WithName(name string) *Bridge[S, T] {
	b.name = name
	return b
}

// Process starts ticking and returns the stream of samples. Each sample is
// stamped with the tick time at which it was observed.
func (b *Bridge[S, T]) Process(ctx context.Context) <-chan Result[Sample[T]] {
	out := make(chan Result[Sample[T]])

	// Created before returning so that no tick after this call is missed.
	ticker := b.clock.NewTicker(b.interval)

	go func() {
		defer close(out)
		defer ticker.Stop()

		capitan.Emit(ctx, BridgeStarted,
			KeyProcessor.Field(b.name),
			KeyInterval.Field(b.interval),
		)
		defer capitan.Emit(ctx, BridgeStopped, KeyProcessor.Field(b.name))

		for {
			select {
			case <-ctx.Done():
				return

			case now := <-ticker.C():
				value, err := Extract(b.shared, b.extract)
				if err != nil {
					capitan.Emit(ctx, BridgePoisoned,
						KeyProcessor.Field(b.name),
						KeyError.Field(err.Error()),
					)
					select {
					case out <- NewError(Sample[T]{Timestamp: now}, fmt.Errorf("%s: %w", b.name, err), b.name):
					case <-ctx.Done():
					}
					return
				}

				select {
				case out <- NewSuccess(Sample[T]{Value: value, Timestamp: now}):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Name returns the bridge name for debugging and monitoring.
func (b *Bridge[S, T]) Name() string {
	return b.name
}

package sensorflow

import (
	"context"
)

// Skip discards the first n items from a stream.
type Skip[T any] struct {
	name  string
	count int
}

// NewSkip creates a processor that skips the first n items.
// After skipping n items, all subsequent items are passed through.
//
// When to use:
//   - Ignore warm-up samples taken before the writer task has run
//   - Skip known invalid initial data
//
// Example:
//
//	// Ignore the first two ticks after start-up
//	settled := sensorflow.NewSkip[sensorflow.Sample[bool]](2).Process(ctx, samples)
func NewSkip[T any](count int) *Skip[T] {
	return &Skip[T]{
		count: count,
		name:  "skip",
	}
}

// Process drops the first count values. Errors are never skipped: a source
// error is forwarded and ends the stream.
func (s *Skip[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		skipped := 0
		for item := range in {
			if item.IsError() {
				forwardFailure(ctx, out, in, item, s.name)
				return
			}

			if skipped < s.count {
				skipped++
				continue
			}

			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (s *Skip[T]) Name() string {
	return s.name
}

package sensorflow

import (
	"context"
)

// Take limits the stream to the first n items.
type Take[T any] struct {
	name  string
	count int
}

// NewTake creates a processor that takes only the first n items from a stream.
// After emitting n items it closes the output channel and drains the
// remaining input in the background.
//
// When to use:
//   - Bounding an unbounded bridge stream
//   - Testing with limited data sets
//
// Example:
//
//	// Stop after the first ten presses
//	first := sensorflow.NewTake[bool](10).Process(ctx, presses)
func NewTake[T any](count int) *Take[T] {
	return &Take[T]{
		count: count,
		name:  "take",
	}
}

// Process forwards at most count items. A source error is forwarded and ends
// the stream.
func (t *Take[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		if t.count <= 0 {
			go drain(ctx, in)
			return
		}

		taken := 0
		for item := range in {
			if item.IsError() {
				forwardFailure(ctx, out, in, item, t.name)
				return
			}

			select {
			case out <- item:
				taken++
			case <-ctx.Done():
				return
			}

			if taken >= t.count {
				go drain(ctx, in)
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (t *Take[T]) Name() string {
	return t.name
}

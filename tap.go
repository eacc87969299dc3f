package sensorflow

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Tap executes a side effect function for each item while passing items through unchanged.
// It's used for logging, debugging and any other observation that shouldn't
// modify the data flow.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Tap[T any] struct {
	name string
	fn   func(Result[T])
}

// NewTap creates a processor that executes a side effect function on each Result[T]
// while passing all items through unchanged. The side effect function receives
// the complete Result[T], allowing it to handle both success and error cases.
//
// Example:
//
//	// Log every window pair on its way to the edge filter
//	trace := sensorflow.NewTap(func(r sensorflow.Result[sensorflow.Pair[bool]]) {
//		if r.IsSuccess() {
//			log.Printf("w: %v %v", r.Value().Previous, r.Value().Current)
//		}
//	}).WithName("window-trace")
//
// Parameters:
//   - fn: Side effect function that receives each Result[T]
//
// Returns a new Tap processor.
func NewTap[T any](fn func(Result[T])) *Tap[T] {
	return &Tap[T]{
		name: "tap",
		fn:   fn,
	}
}

// WithName sets a custom name for this processor.
// If not set, defaults to "tap".
func (t *Tap[T]) WithName(name string) *Tap[T] {
	t.name = name
	return t
}

// Process executes the side effect function on each item while passing all items
// through unchanged. A source error is observed, forwarded and ends the stream.
func (t *Tap[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for item := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			t.observe(ctx, item)

			if item.IsError() {
				forwardFailure(ctx, out, in, item, t.name)
				return
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

// observe runs the side effect. A panicking side effect is reported and
// does not break the pipeline.
func (t *Tap[T]) observe(ctx context.Context, item Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			capitan.Emit(ctx, TapPanicked,
				KeyProcessor.Field(t.name),
				KeyError.Field(fmt.Sprint(r)),
			)
		}
	}()
	t.fn(item)
}

// Name returns the processor name for debugging and monitoring.
func (t *Tap[T]) Name() string {
	return t.name
}

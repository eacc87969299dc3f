package sensorflow

import (
	"context"
)

// Filter selectively passes items through a stream based on a predicate function.
// Only items for which the predicate returns true are emitted to the output channel.
// Items that don't match the predicate are discarded.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Filter[T any] struct {
	name      string
	predicate func(T) bool
}

// NewFilter creates a processor that selectively passes items based on a predicate.
// Items for which the predicate returns true are forwarded unchanged.
// Items for which the predicate returns false are discarded.
//
// The predicate function should be pure (no side effects) and deterministic
// for consistent and predictable filtering behavior.
//
// Example:
//
//	// Keep only pairs where the signal changed
//	changed := sensorflow.NewFilter(func(p sensorflow.Pair[bool]) bool {
//		return p.Previous != p.Current
//	})
//
//	results := changed.Process(ctx, pairs)
//	for result := range results {
//		if result.IsError() {
//			log.Printf("Processing error: %v", result.Error())
//			break
//		}
//		fmt.Printf("Changed: %v\n", result.Value())
//	}
//
// Parameters:
//   - predicate: Function that returns true for items to keep, false to discard
//
// Returns a new Filter processor.
func NewFilter[T any](predicate func(T) bool) *Filter[T] {
	return &Filter[T]{
		name:      "filter",
		predicate: predicate,
	}
}

// WithName sets a custom name for this processor.
// If not set, defaults to "filter".
// The name is used for debugging, monitoring, and error reporting.
func (f *Filter[T]) WithName(name string) *Filter[T] {
	f.name = name
	return f
}

// Process filters input items based on the predicate function.
// A source error is forwarded without applying the predicate and ends the stream.
func (f *Filter[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for item := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if item.IsError() {
				forwardFailure(ctx, out, in, item, f.name)
				return
			}

			if f.predicate(item.Value()) {
				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (f *Filter[T]) Name() string {
	return f.name
}

package sensorflow

import (
	"context"
)

// Mapper transforms each item in a stream from one type to another using a mapping function.
type Mapper[In, Out any] struct {
	fn   func(In) Out
	name string
}

// NewMapper creates a processor that transforms items from one type to another.
//
// Example:
//
//	// Keep only the newer value of each window pair
//	current := sensorflow.NewMapper("current", func(p sensorflow.Pair[bool]) bool {
//		return p.Current
//	})
//
// Parameters:
//   - name: Descriptive name for debugging and monitoring
//   - fn: Pure transformation function from input to output type
func NewMapper[In, Out any](name string, fn func(In) Out) *Mapper[In, Out] {
	return &Mapper[In, Out]{
		fn:   fn,
		name: name,
	}
}

// NewValues creates a mapper that strips the observation time from samples.
func NewValues[T any]() *Mapper[Sample[T], T] {
	return NewMapper("values", func(s Sample[T]) T { return s.Value })
}

// Process applies the mapping function to every successful item. A source
// error is forwarded and ends the stream.
func (m *Mapper[In, Out]) Process(ctx context.Context, in <-chan Result[In]) <-chan Result[Out] {
	out := make(chan Result[Out])

	go func() {
		defer close(out)

		for item := range in {
			if item.IsError() {
				forwardFailure(ctx, out, in, item, m.name)
				return
			}

			select {
			case out <- NewSuccess(m.fn(item.Value())):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (m *Mapper[In, Out]) Name() string {
	return m.name
}

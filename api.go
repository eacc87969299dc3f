// Package sensorflow provides lazy, composable stream transformers for turning
// a periodically sampled signal into edge-triggered events.
//
// Every stage consumes and produces Go channels of Result[T]. A received value
// is the next item, a received error is a terminal failure of the source, and
// a closed channel means the source is exhausted. Stages are composed by
// feeding the output channel of one into the next.
//
// Basic usage:
//
//	ctx := context.Background()
//	state := sensorflow.NewShared(buttons.Buttons{})
//
//	// Sample the play flag every 50ms
//	bridge := sensorflow.NewBridge(state, buttons.Field(buttons.Play), 50*time.Millisecond)
//	samples := bridge.Process(ctx)
//
//	// Strip timestamps and detect presses
//	values := sensorflow.NewValues[bool]().Process(ctx, samples)
//	presses := sensorflow.NewRisingEdge().Process(ctx, values)
//
//	err := sensorflow.ForEach(ctx, presses, func(bool) {
//		fmt.Println("play pressed")
//	})
//
// The package provides:
//   - Window: consecutive (previous, current) pairs
//   - And, Or, Not and their bitwise variants over positionally paired streams
//   - GoesActive, GoesInactive and Changes edge detectors
//   - Bridge: periodic sampling of lock-guarded shared state
//   - Filter, Mapper, Tap, Take and Skip for general plumbing
package sensorflow

import (
	"context"
	"time"
)

// Processor is the core interface for single-input stream stages.
// It transforms an input channel of Result[In] to an output channel of Result[Out].
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Forward a source error once and then stop
//   - Preserve the order of their input
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan Result[In]) <-chan Result[Out]

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}

// BinaryProcessor is implemented by stages that pair two inputs positionally.
type BinaryProcessor[T any] interface {
	Process(ctx context.Context, a, b <-chan Result[T]) <-chan Result[T]
	Name() string
}

// Sample is a single observation of a signal.
// Timestamp records when the value was observed, not when it was processed.
type Sample[T any] struct {
	Value     T
	Timestamp time.Time
}

// SameValue reports whether two samples observed the same value.
// Timestamps are ignored.
func SameValue[T comparable](a, b Sample[T]) bool {
	return a.Value == b.Value
}

// Pair holds two consecutive values of a stream in arrival order.
type Pair[T any] struct {
	Previous T
	Current  T
}

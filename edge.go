package sensorflow

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Edge emits the current value of a stream whenever a window pair satisfies
// its trigger. It is a Window followed by a Filter on the pair and a Mapper
// back to the newer value.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Edge[T any] struct {
	name    string
	trigger func(Pair[T]) bool
}

// NewGoesActive creates an edge detector that fires on every false-to-true
// transition, as judged by truthy. The value that became active is emitted.
//
// Repeated active observations produce a single event because the second
// pair already starts active. Falling transitions produce nothing.
//
// Example:
//
//	// Fire when the ADC level rises above 2000
//	high := sensorflow.NewGoesActive(func(v uint16) bool { return v > 2000 })
//	events := high.Process(ctx, levels)
func NewGoesActive[T any](truthy func(T) bool) *Edge[T] {
	return &Edge[T]{
		name: "goes-active",
		trigger: func(p Pair[T]) bool {
			return !truthy(p.Previous) && truthy(p.Current)
		},
	}
}

// NewGoesInactive creates an edge detector that fires on every true-to-false
// transition, as judged by truthy. The value that became inactive is emitted.
func NewGoesInactive[T any](truthy func(T) bool) *Edge[T] {
	return &Edge[T]{
		name: "goes-inactive",
		trigger: func(p Pair[T]) bool {
			return truthy(p.Previous) && !truthy(p.Current)
		},
	}
}

// NewRisingEdge is NewGoesActive for boolean streams.
//
// Example:
//
//	presses := sensorflow.NewRisingEdge().Process(ctx, pressed)
//	// [false, true, true, true, false] yields a single true
func NewRisingEdge() *Edge[bool] {
	return NewGoesActive(func(v bool) bool { return v })
}

// NewFallingEdge is NewGoesInactive for boolean streams.
func NewFallingEdge() *Edge[bool] {
	return NewGoesInactive(func(v bool) bool { return v })
}

// NewChanges creates a detector that emits the current value whenever it
// differs from the previous one.
func NewChanges[T comparable]() *Edge[T] {
	return &Edge[T]{
		name: "changes",
		trigger: func(p Pair[T]) bool {
			return p.Previous != p.Current
		},
	}
}

// WithName sets a custom name for this processor.
func (e *Edge[T]) WithName(name string) *Edge[T] {
	e.name = name
	return e
}

// Process chains the window, the trigger filter and the projection onto the
// current value. Exhaustion and errors propagate through all three stages.
func (e *Edge[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	pairs := NewWindow[T]().WithName(e.name).Process(ctx, in)
	fired := NewFilter(e.trigger).WithName(e.name).Process(ctx, pairs)
	return NewMapper(e.name, func(p Pair[T]) T {
		capitan.Emit(ctx, EdgeDetected, KeyProcessor.Field(e.name))
		return p.Current
	}).Process(ctx, fired)
}

// Name returns the processor name for debugging and monitoring.
func (e *Edge[T]) Name() string {
	return e.name
}

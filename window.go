package sensorflow

import "context"

// Window emits each item of a stream together with the item before it.
// For N source values it emits exactly N-1 pairs, in source order.
type Window[T any] struct {
	name string
}

// NewWindow creates a processor that pairs every item with its predecessor.
//
// When to use:
//   - Detecting changes between consecutive samples
//   - Computing deltas between readings
//   - Building edge detectors (see GoesActive)
//
// Example:
//
//	window := sensorflow.NewWindow[int]()
//	pairs := window.Process(ctx, readings)
//	for p := range pairs {
//		fmt.Println(p.Value().Current - p.Value().Previous)
//	}
//
// The first item is held back until a second one arrives. When the source is
// exhausted any held item is dropped: incomplete pairs are never emitted.
func NewWindow[T any]() *Window[T] {
	return &Window[T]{name: "window"}
}

// WithName sets a custom name for this processor.
// If not set, defaults to "window".
func (w *Window[T]) WithName(name string) *Window[T] {
	w.name = name
	return w
}

// Process pairs consecutive input values. The output closes when the input
// closes, whatever the window state. A source error is forwarded and ends
// the stream.
func (w *Window[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[Pair[T]] {
	out := make(chan Result[Pair[T]])

	go func() {
		defer close(out)

		var state windowState[T]
		for {
			var item Result[T]
			var ok bool
			select {
			case <-ctx.Done():
				return
			case item, ok = <-in:
			}
			if !ok {
				return
			}

			if item.IsError() {
				forwardFailure(ctx, out, in, item, w.name)
				return
			}

			pair, ready := state.observe(item.Value())
			if !ready {
				// Nothing to emit yet; ask the source again straight away.
				continue
			}

			select {
			case out <- NewSuccess(pair):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (w *Window[T]) Name() string {
	return w.name
}

type windowPhase uint8

const (
	noPrior windowPhase = iota
	hasPrior
)

// windowState is the single retained "previous" slot of a Window.
type windowState[T any] struct {
	prior T
	phase windowPhase
}

// observe folds v into the state and reports whether a pair is ready.
func (s *windowState[T]) observe(v T) (Pair[T], bool) {
	switch s.phase {
	case noPrior:
		s.prior = v
		s.phase = hasPrior
		return Pair[T]{}, false
	default:
		p := Pair[T]{Previous: s.prior, Current: v}
		s.prior = v
		return p, true
	}
}

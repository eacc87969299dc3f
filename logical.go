package sensorflow

import "context"

var (
	_ BinaryProcessor[bool] = (*Combine[bool])(nil)
	_ Processor[bool, bool] = (*Not[bool])(nil)
)

// Bitwise is the set of types the bitwise combinators accept.
type Bitwise interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Combine pairs two streams positionally and reduces each pair to one value.
//
// Both inputs are advanced in lockstep: one item is taken from each per step.
// There is no timestamp alignment, so the inputs must already share a cadence
// and length. When either input is exhausted the output closes; unequal
// inputs are truncated to the shorter one and never padded.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Combine[T any] struct {
	name string
	fn   func(a, b T) T
}

// NewCombine creates a binary processor from a reducing function.
//
// Example:
//
//	// Largest of two channels
//	peak := sensorflow.NewCombine("peak", func(a, b int) int { return max(a, b) })
//	peaks := peak.Process(ctx, left, right)
func NewCombine[T any](name string, fn func(a, b T) T) *Combine[T] {
	return &Combine[T]{name: name, fn: fn}
}

// NewAnd creates a processor emitting a && b for each lockstep pair.
func NewAnd() *Combine[bool] {
	return NewCombine("and", func(a, b bool) bool { return a && b })
}

// NewOr creates a processor emitting a || b for each lockstep pair.
//
// Example:
//
//	// Either volume button held
//	volume := sensorflow.NewOr().Process(ctx, volUp, volDown)
func NewOr() *Combine[bool] {
	return NewCombine("or", func(a, b bool) bool { return a || b })
}

// NewBitAnd creates a processor emitting a & b for each lockstep pair.
func NewBitAnd[T Bitwise]() *Combine[T] {
	return NewCombine("bit-and", func(a, b T) T { return a & b })
}

// NewBitOr creates a processor emitting a | b for each lockstep pair.
func NewBitOr[T Bitwise]() *Combine[T] {
	return NewCombine("bit-or", func(a, b T) T { return a | b })
}

// WithName sets a custom name for this processor.
func (c *Combine[T]) WithName(name string) *Combine[T] {
	c.name = name
	return c
}

// Process emits fn(a, b) for every pair of items taken one from each input.
// The output closes as soon as either input closes, even while the other is
// still waiting to produce. An error on either input is forwarded and ends
// the stream.
func (c *Combine[T]) Process(ctx context.Context, a, b <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for {
			var left, right Result[T]
			haveLeft, haveRight := false, false

			for !haveLeft || !haveRight {
				// A nil channel never fires, so only the missing sides are read.
				var fromA, fromB <-chan Result[T]
				if !haveLeft {
					fromA = a
				}
				if !haveRight {
					fromB = b
				}

				select {
				case <-ctx.Done():
					return
				case item, ok := <-fromA:
					if !ok {
						go drain(ctx, b)
						return
					}
					if item.IsError() {
						forwardFailure(ctx, out, b, item, c.name)
						go drain(ctx, a)
						return
					}
					left, haveLeft = item, true
				case item, ok := <-fromB:
					if !ok {
						go drain(ctx, a)
						return
					}
					if item.IsError() {
						forwardFailure(ctx, out, a, item, c.name)
						go drain(ctx, b)
						return
					}
					right, haveRight = item, true
				}
			}

			select {
			case out <- NewSuccess(c.fn(left.Value(), right.Value())):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (c *Combine[T]) Name() string {
	return c.name
}

// Not maps every item to its logical complement.
// The output has the same length as the input and closes exactly when the
// input closes.
type Not[T any] struct {
	name string
	fn   func(T) T
}

// NewNot creates a processor emitting !v for every boolean item.
func NewNot() *Not[bool] {
	return &Not[bool]{name: "not", fn: func(v bool) bool { return !v }}
}

// NewBitNot creates a processor emitting ^v for every item.
func NewBitNot[T Bitwise]() *Not[T] {
	return &Not[T]{name: "bit-not", fn: func(v T) T { return ^v }}
}

// WithName sets a custom name for this processor.
func (n *Not[T]) WithName(name string) *Not[T] {
	n.name = name
	return n
}

// Process complements each input value. An input error is forwarded and ends
// the stream.
func (n *Not[T]) Process(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
	out := make(chan Result[T])

	go func() {
		defer close(out)

		for item := range in {
			if item.IsError() {
				forwardFailure(ctx, out, in, item, n.name)
				return
			}

			select {
			case out <- item.Map(n.fn):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Name returns the processor name for debugging and monitoring.
func (n *Not[T]) Name() string {
	return n.name
}

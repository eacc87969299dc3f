package sensorflow

// Result represents either a successful value or an error in stream processing.
// A single channel of Result[T] carries both data and failures so that stages
// never need a second error channel.
type Result[T any] struct {
	value T
	err   *StreamError[T]
}

// NewSuccess creates a Result containing a successful value.
func NewSuccess[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// NewError creates a Result containing an error.
func NewError[T any](item T, err error, processorName string) Result[T] {
	return Result[T]{err: NewStreamError(item, err, processorName)}
}

// IsError returns true if this Result contains an error.
func (r Result[T]) IsError() bool {
	return r.err != nil
}

// IsSuccess returns true if this Result contains a successful value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the successful value.
// Panics if called on a Result containing an error - always check IsSuccess() first.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("called Value() on Result containing an error")
	}
	return r.value
}

// Error returns the StreamError.
// Returns nil if this Result contains a successful value.
func (r Result[T]) Error() *StreamError[T] {
	return r.err
}

// Map applies a function to the value if this Result is successful.
// If this Result contains an error, returns the error unchanged.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return NewSuccess(fn(r.value))
}

// relabel re-types a failed Result for the stage that forwards it.
// The underlying error and its timestamp are kept; the item cannot survive a
// type change and is replaced by the zero value of Out.
func relabel[In, Out any](r Result[In], processorName string) Result[Out] {
	se := r.Error()
	var zero Out
	return Result[Out]{err: &StreamError[Out]{
		Item:          zero,
		Err:           se.Err,
		ProcessorName: processorName,
		Timestamp:     se.Timestamp,
	}}
}

package sensorflow

import (
	"errors"
	"fmt"
	"time"
)

// ErrPoisoned is returned when shared state is accessed after a previous
// holder of its lock panicked. The state may be half-updated and is never
// read again.
var ErrPoisoned = errors.New("sensorflow: shared state poisoned")

// StreamError represents an error that occurred during stream processing.
// It captures both the item that caused the error and the error itself.
//
//nolint:govet // fieldalignment: struct layout optimized for readability over memory
type StreamError[T any] struct {
	// Item is the original item that caused the processing error. Once the
	// error has been forwarded by a stage it holds the zero value of T, since
	// the original item cannot cross a change of type.
	Item T

	// Err is the underlying error that occurred during processing.
	Err error

	// ProcessorName identifies which processor last forwarded the error.
	ProcessorName string

	// Timestamp records when the error occurred.
	Timestamp time.Time
}

// NewStreamError creates a new StreamError with the current timestamp.
func NewStreamError[T any](item T, err error, processorName string) *StreamError[T] {
	return &StreamError[T]{
		Item:          item,
		Err:           err,
		ProcessorName: processorName,
		Timestamp:     time.Now(),
	}
}

// String returns a human-readable representation of the error.
func (se *StreamError[T]) String() string {
	return fmt.Sprintf("StreamError[%s]: %v (item: %v, time: %s)",
		se.ProcessorName, se.Err, se.Item, se.Timestamp.Format(time.RFC3339))
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (se *StreamError[T]) Unwrap() error {
	return se.Err
}

// Error implements the error interface.
func (se *StreamError[T]) Error() string {
	return se.String()
}

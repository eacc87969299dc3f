// Package testing provides test utilities for sensorflow pipelines.
package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/sensorflow"
)

// CollectResultsWithTimeout collects all results from a channel until it closes
// or the timeout expires.
func CollectResultsWithTimeout[T any](t *testing.T, ch <-chan sensorflow.Result[T], timeout time.Duration) []sensorflow.Result[T] {
	t.Helper()

	var results []sensorflow.Result[T]
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case result, ok := <-ch:
			if !ok {
				return results
			}
			results = append(results, result)
		case <-timer.C:
			t.Errorf("stream still open after %v", timeout)
			return results
		}
	}
}

// CollectValues collects all successful values from a Result channel with a timeout.
// Errors are skipped.
func CollectValues[T any](t *testing.T, ch <-chan sensorflow.Result[T], timeout time.Duration) []T {
	t.Helper()

	results := CollectResultsWithTimeout(t, ch, timeout)
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			values = append(values, r.Value())
		}
	}
	return values
}

// CollectErrors collects all errors from a Result channel with a timeout.
func CollectErrors[T any](t *testing.T, ch <-chan sensorflow.Result[T], timeout time.Duration) []error {
	t.Helper()

	results := CollectResultsWithTimeout(t, ch, timeout)
	errs := make([]error, 0)
	for _, r := range results {
		if r.IsError() {
			errs = append(errs, r.Error())
		}
	}
	return errs
}

// SendValues returns a closed, buffered channel holding values as successful Results.
func SendValues[T any](t *testing.T, values []T) <-chan sensorflow.Result[T] {
	t.Helper()

	ch := make(chan sensorflow.Result[T], len(values))
	for _, v := range values {
		ch <- sensorflow.NewSuccess(v)
	}
	close(ch)
	return ch
}

// SendValuesThenError is SendValues followed by one failed Result.
func SendValuesThenError[T any](t *testing.T, values []T, err error) <-chan sensorflow.Result[T] {
	t.Helper()

	ch := make(chan sensorflow.Result[T], len(values)+1)
	for _, v := range values {
		ch <- sensorflow.NewSuccess(v)
	}
	var zero T
	ch <- sensorflow.NewError(zero, err, "test-source")
	close(ch)
	return ch
}

// AssertValues verifies got equals want element by element.
func AssertValues[T comparable](t *testing.T, got, want []T) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d values %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// AssertAllSuccess verifies all results are successful.
func AssertAllSuccess[T any](t *testing.T, results []sensorflow.Result[T]) {
	t.Helper()

	for i, r := range results {
		if r.IsError() {
			t.Errorf("result %d: expected success, got error: %v", i, r.Error())
		}
	}
}

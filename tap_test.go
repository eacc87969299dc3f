package sensorflow

import (
	"context"
	"errors"
	"testing"
)

func TestTap_Name(t *testing.T) {
	tap := NewTap(func(Result[int]) {})
	if tap.Name() != "tap" {
		t.Errorf("expected name 'tap', got %q", tap.Name())
	}
	if tap.WithName("trace").Name() != "trace" {
		t.Errorf("expected name 'trace', got %q", tap.Name())
	}
}

func TestTap_PassesThroughUnchanged(t *testing.T) {
	ctx := context.Background()

	var observed []int
	tap := NewTap(func(r Result[int]) {
		observed = append(observed, r.Value())
	})

	got := values(t, collect(t, tap.Process(ctx, feed(1, 2, 3))))

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if len(observed) != 3 {
		t.Errorf("expected 3 observations, got %v", observed)
	}
}

func TestTap_ObservesErrorThenStops(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	in := make(chan Result[int], 3)
	in <- NewSuccess(1)
	in <- NewError(0, boom, "source")
	in <- NewSuccess(2)
	close(in)

	var sawError bool
	tap := NewTap(func(r Result[int]) {
		if r.IsError() {
			sawError = true
		}
	}).WithName("trace")

	results := collect(t, tap.Process(ctx, in))
	if len(results) != 2 {
		t.Fatalf("expected one value then the error, got %d results", len(results))
	}
	if !sawError {
		t.Error("expected the side effect to observe the error")
	}
	if !errors.Is(results[1].Error(), boom) || results[1].Error().ProcessorName != "trace" {
		t.Errorf("unexpected error result %v", results[1].Error())
	}
}

func TestTap_PanicDoesNotBreakPipeline(t *testing.T) {
	ctx := context.Background()

	tap := NewTap(func(r Result[int]) {
		if r.Value() == 2 {
			panic("observer bug")
		}
	})

	got := values(t, collect(t, tap.Process(ctx, feed(1, 2, 3))))
	if len(got) != 3 {
		t.Errorf("expected all items despite the panic, got %v", got)
	}
}

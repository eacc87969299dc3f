package sensorflow

import (
	"context"
	"errors"
	"testing"
)

func TestSkip_DropsFirstN(t *testing.T) {
	ctx := context.Background()

	skip := NewSkip[int](2)
	if skip.Name() != "skip" {
		t.Errorf("expected name 'skip', got %q", skip.Name())
	}

	got := values(t, collect(t, skip.Process(ctx, feed(1, 2, 3, 4))))
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("expected [3 4], got %v", got)
	}
}

func TestSkip_MoreThanAvailable(t *testing.T) {
	ctx := context.Background()
	if got := collect(t, NewSkip[int](5).Process(ctx, feed(1, 2))); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestSkip_ErrorsAreNeverSkipped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	in := make(chan Result[int], 3)
	in <- NewError(0, boom, "source")
	in <- NewSuccess(1)
	in <- NewSuccess(2)
	close(in)

	results := collect(t, NewSkip[int](2).Process(ctx, in))
	if len(results) != 1 || !errors.Is(results[0].Error(), boom) {
		t.Errorf("expected only the error, got %v", results)
	}
}

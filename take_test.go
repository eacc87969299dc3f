package sensorflow

import (
	"context"
	"errors"
	"testing"
)

func TestTake_FirstN(t *testing.T) {
	ctx := context.Background()

	take := NewTake[int](3)
	if take.Name() != "take" {
		t.Errorf("expected name 'take', got %q", take.Name())
	}

	got := values(t, collect(t, take.Process(ctx, feed(1, 2, 3, 4, 5))))
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

func TestTake_FewerThanN(t *testing.T) {
	ctx := context.Background()
	got := values(t, collect(t, NewTake[int](10).Process(ctx, feed(1, 2))))
	if len(got) != 2 {
		t.Errorf("expected [1 2], got %v", got)
	}
}

func TestTake_Zero(t *testing.T) {
	ctx := context.Background()
	if got := collect(t, NewTake[int](0).Process(ctx, feed(1, 2))); len(got) != 0 {
		t.Errorf("expected nothing, got %v", got)
	}
}

func TestTake_UnblocksUpstream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan Result[int])
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		for i := 0; i < 5; i++ {
			in <- NewSuccess(i)
		}
		close(in)
	}()

	got := collect(t, NewTake[int](2).Process(ctx, in))
	if len(got) != 2 {
		t.Errorf("expected 2 results, got %d", len(got))
	}
	<-sent
}

func TestTake_ErrorIsTerminal(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	in := make(chan Result[int], 3)
	in <- NewSuccess(1)
	in <- NewError(0, boom, "source")
	in <- NewSuccess(2)
	close(in)

	results := collect(t, NewTake[int](5).Process(ctx, in))
	if len(results) != 2 || !errors.Is(results[1].Error(), boom) {
		t.Errorf("expected one value then the error, got %v", results)
	}
}

package sensorflow

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestGoesActive_SingleRisingEdge(t *testing.T) {
	ctx := context.Background()
	got := values(t, collect(t, NewRisingEdge().Process(ctx, feed(false, true, true, true, false))))
	assertBools(t, got, []bool{true})
}

func TestGoesActive_NothingForConstantSignals(t *testing.T) {
	ctx := context.Background()

	for n := 1; n <= 6; n++ {
		lows := make([]bool, n)
		highs := make([]bool, n)
		for i := range highs {
			highs[i] = true
		}

		if got := collect(t, NewRisingEdge().Process(ctx, feed(lows...))); len(got) != 0 {
			t.Errorf("n=%d all-false: expected no events, got %v", n, got)
		}
		if got := collect(t, NewRisingEdge().Process(ctx, feed(highs...))); len(got) != 0 {
			t.Errorf("n=%d all-true: expected no events, got %v", n, got)
		}
	}
}

func TestGoesActive_OncePerRisingTransition(t *testing.T) {
	ctx := context.Background()
	input := []bool{true, false, true, true, false, false, true, false, true}

	got := values(t, collect(t, NewRisingEdge().Process(ctx, feed(input...))))

	rising := 0
	for i := 1; i < len(input); i++ {
		if !input[i-1] && input[i] {
			rising++
		}
	}
	if len(got) != rising {
		t.Errorf("expected %d events, got %d", rising, len(got))
	}
}

func TestGoesActive_GenericTruthiness(t *testing.T) {
	ctx := context.Background()

	// ADC levels crossing a threshold; the crossing value is emitted.
	high := NewGoesActive(func(v uint16) bool { return v > 2000 })
	got := values(t, collect(t, high.Process(ctx, feed[uint16](100, 2100, 2300, 50, 2400))))

	if len(got) != 2 || got[0] != 2100 || got[1] != 2400 {
		t.Errorf("expected [2100 2400], got %v", got)
	}
	if high.Name() != "goes-active" {
		t.Errorf("expected name 'goes-active', got %q", high.Name())
	}
}

func TestGoesInactive_FallingEdges(t *testing.T) {
	ctx := context.Background()
	got := values(t, collect(t, NewFallingEdge().Process(ctx, feed(false, true, true, false, false, true, false))))
	assertBools(t, got, []bool{false, false})
}

func TestChanges_EmitsOnEveryChange(t *testing.T) {
	ctx := context.Background()
	got := values(t, collect(t, NewChanges[string]().Process(ctx, feed("none", "none", "play", "play", "menu", "none"))))

	want := []string{"play", "menu", "none"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestGoesActive_ErrorPropagates(t *testing.T) {
	ctx := context.Background()

	in := make(chan Result[bool], 4)
	in <- NewSuccess(false)
	in <- NewSuccess(true)
	in <- NewError(false, ErrPoisoned, "bridge")
	in <- NewSuccess(false)
	close(in)

	results := collect(t, NewRisingEdge().WithName("play-press").Process(ctx, in))
	if len(results) != 2 {
		t.Fatalf("expected one event then the error, got %d results", len(results))
	}
	if !results[0].Value() {
		t.Error("expected rising edge event")
	}
	if !errors.Is(results[1].Error(), ErrPoisoned) {
		t.Errorf("expected ErrPoisoned, got %v", results[1].Error())
	}
	if results[1].Error().ProcessorName != "play-press" {
		t.Errorf("expected processor name 'play-press', got %q", results[1].Error().ProcessorName)
	}
}

// Example demonstrates turning a sampled button into press events.
func ExampleNewRisingEdge() {
	ctx := context.Background()

	pressed := make(chan Result[bool], 8)
	for _, v := range []bool{false, false, true, true, true, false, true, false} {
		pressed <- NewSuccess(v)
	}
	close(pressed)

	count := 0
	for range NewRisingEdge().Process(ctx, pressed) {
		count++
	}
	fmt.Printf("%d presses\n", count)

	// Output:
	// 2 presses
}

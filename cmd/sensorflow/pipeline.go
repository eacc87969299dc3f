package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zoobzio/sensorflow"
	"github.com/zoobzio/sensorflow/buttons"
	"github.com/zoobzio/sensorflow/internal/led"
)

// observer sees every sample a bridge takes, before it enters the pipeline.
type observer func(bridge string, sample sensorflow.Result[sensorflow.Sample[bool]])

// pipeline is one named stream of press events.
type pipeline struct {
	name   string
	events <-chan sensorflow.Result[bool]
}

// wiring holds what every pipeline shares.
type wiring struct {
	state    *sensorflow.Shared[buttons.Buttons]
	clock    sensorflow.Clock
	observe  observer
	interval time.Duration
	warmup   int
}

// pipelines builds one press stream per button plus a "volume" stream that
// fires when either volume button goes down.
func (w wiring) pipelines(ctx context.Context) []pipeline {
	ps := make([]pipeline, 0, 5)
	for _, t := range []buttons.Type{buttons.VolUp, buttons.VolDown, buttons.Play, buttons.Menu} {
		ps = append(ps, pipeline{name: t.String(), events: w.presses(ctx, t)})
	}
	ps = append(ps, pipeline{name: "volume", events: w.either(ctx, "volume", buttons.VolUp, buttons.VolDown)})
	return ps
}

// sample bridges one button flag into a plain boolean stream. The first
// warmup samples are dropped after observation, so every bridge of a chord
// skips the same ticks.
func (w wiring) sample(ctx context.Context, name string, t buttons.Type) <-chan sensorflow.Result[bool] {
	samples := sensorflow.NewBridge(w.state, buttons.Field(t), w.interval).
		WithClock(w.clock).
		WithName(name).
		Process(ctx)

	if w.observe != nil {
		samples = sensorflow.NewTap(func(r sensorflow.Result[sensorflow.Sample[bool]]) {
			w.observe(name, r)
		}).WithName(name + "-observe").Process(ctx, samples)
	}

	settled := sensorflow.NewSkip[sensorflow.Sample[bool]](w.warmup).Process(ctx, samples)
	return sensorflow.NewValues[bool]().Process(ctx, settled)
}

func (w wiring) presses(ctx context.Context, t buttons.Type) <-chan sensorflow.Result[bool] {
	return sensorflow.NewRisingEdge().
		WithName(t.String() + "-press").
		Process(ctx, w.sample(ctx, t.String(), t))
}

// either ORs two bridges driven at the same interval, so their samples stay
// in lockstep.
func (w wiring) either(ctx context.Context, name string, a, b buttons.Type) <-chan sensorflow.Result[bool] {
	left := w.sample(ctx, name+"-"+a.String(), a)
	right := w.sample(ctx, name+"-"+b.String(), b)
	held := sensorflow.NewOr().WithName(name).Process(ctx, left, right)
	return sensorflow.NewRisingEdge().WithName(name + "-press").Process(ctx, held)
}

// acknowledger logs presses and blinks the LED once per press.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type acknowledger struct {
	mu     sync.Mutex
	logger *slog.Logger
	light  led.Light
	clock  sensorflow.Clock
	blink  time.Duration
}

// onPress returns the consumer callback for the named pipeline.
func (a *acknowledger) onPress(ctx context.Context, name string) func(bool) {
	return func(bool) {
		a.logger.Info("button pressed", "button", name)
		if a.light == nil || a.blink <= 0 {
			return
		}

		a.mu.Lock()
		defer a.mu.Unlock()
		if err := led.Blink(ctx, a.light, a.blink, a.clock); err != nil {
			a.logger.Warn("led blink failed", "button", name, "error", err)
		}
	}
}

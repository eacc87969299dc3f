// Command sensorflow samples a resistor-ladder keypad through an ADC channel
// and reports button presses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/zoobzio/capitan"

	"github.com/zoobzio/sensorflow"
	"github.com/zoobzio/sensorflow/buttons"
	"github.com/zoobzio/sensorflow/internal/adc"
	"github.com/zoobzio/sensorflow/internal/config"
	"github.com/zoobzio/sensorflow/internal/led"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (built-in defaults when empty)")
	adcPath := flag.String("adc", "", "Override the ADC channel path from the configuration")
	printState := flag.Bool("print-state", false, "Read and classify one ADC value, then exit")
	verbose := flag.Bool("v", false, "Log every reading and sample")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	cfg, err := loadConfig(*configPath, *adcPath)
	if err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *printState, *verbose); err != nil {
		logger.Error("fatal", "error", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig(path, adcPath string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if adcPath != "" {
		cfg.ADC.Path = adcPath
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, printState, verbose bool) error {
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	reader, err := adc.NewSysfsReader(cfg.ADC.Path)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer reader.Close()

	state := sensorflow.NewShared(buttons.Buttons{})
	updater := buttons.NewUpdater(reader, table, state, cfg.SampleInterval)

	if printState {
		pressed, err := updater.Step(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("buttons: %s\n", buttons.Names(pressed))
		return nil
	}

	var light led.Light
	if cfg.LED.Enabled {
		gpioLight, err := led.NewRealLight(cfg.LED.Chip, cfg.LED.Line)
		if err != nil {
			return fmt.Errorf("init led: %w", err)
		}
		defer gpioLight.Close()
		light = gpioLight
	}

	hookSignals(logger)
	defer capitan.Shutdown()

	w := wiring{
		state:    state,
		clock:    sensorflow.RealClock,
		interval: cfg.BridgeInterval,
		warmup:   cfg.WarmupSamples,
	}
	if verbose {
		w.observe = func(bridge string, r sensorflow.Result[sensorflow.Sample[bool]]) {
			if r.IsSuccess() {
				logger.Debug("sample", "bridge", bridge, "value", r.Value().Value)
			}
		}
	}
	ack := &acknowledger{
		logger: logger,
		light:  light,
		clock:  sensorflow.RealClock,
		blink:  cfg.BlinkDuration,
	}

	logger.Info("started",
		"sample_interval", cfg.SampleInterval,
		"bridge_interval", cfg.BridgeInterval,
		"adc", cfg.ADC.Path,
		"keys", len(table),
	)

	return serve(ctx, updater, w, ack)
}

// serve runs the writer task and every pipeline until ctx is done or one of
// them fails. The writer is always joined before returning, so the shared
// state outlives every goroutine touching it.
func serve(ctx context.Context, updater *buttons.Updater, w wiring, ack *acknowledger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := updater.Run(ctx); err != nil {
			fail(fmt.Errorf("updater: %w", err))
		}
	}()

	for _, p := range w.pipelines(ctx) {
		wg.Add(1)
		go func(p pipeline) {
			defer wg.Done()
			err := sensorflow.ForEach(ctx, p.events, ack.onPress(ctx, p.name))
			if err != nil && !errors.Is(err, context.Canceled) {
				fail(fmt.Errorf("pipeline %s: %w", p.name, err))
			}
		}(p)
	}

	wg.Wait()
	return firstErr
}

// hookSignals routes library signals into the structured log.
func hookSignals(logger *slog.Logger) {
	capitan.Hook(sensorflow.BridgePoisoned, func(_ context.Context, e *capitan.Event) {
		name, _ := sensorflow.KeyProcessor.From(e)
		msg, _ := sensorflow.KeyError.From(e)
		logger.Error("bridge poisoned", "bridge", name, "error", msg)
	})

	capitan.Hook(sensorflow.UpdaterReadFailed, func(_ context.Context, e *capitan.Event) {
		msg, _ := sensorflow.KeyError.From(e)
		logger.Warn("adc read failed", "error", msg)
	})

	capitan.Hook(sensorflow.ReadingClassified, func(_ context.Context, e *capitan.Event) {
		raw, _ := sensorflow.KeyRaw.From(e)
		pressed, _ := sensorflow.KeyButtons.From(e)
		logger.Debug("reading", "raw", raw, "buttons", pressed)
	})

	capitan.Hook(sensorflow.TapPanicked, func(_ context.Context, e *capitan.Event) {
		name, _ := sensorflow.KeyProcessor.From(e)
		msg, _ := sensorflow.KeyError.From(e)
		logger.Error("observer panicked", "stage", name, "error", msg)
	})
}

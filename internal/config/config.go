// Package config loads the keypad configuration: sampling cadences, the ADC
// channel, the status LED and the threshold table.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/sensorflow/buttons"
	"github.com/zoobzio/sensorflow/internal/adc"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is the complete runtime configuration.
type Config struct {
	// SampleInterval is the cadence of the writer task reading the ADC.
	SampleInterval time.Duration `yaml:"sample_interval" validate:"gt=0"`

	// BridgeInterval is the cadence at which pipelines sample the button state.
	BridgeInterval time.Duration `yaml:"bridge_interval" validate:"gt=0"`

	// BlinkDuration is how long the LED stays lit per press.
	BlinkDuration time.Duration `yaml:"blink_duration" validate:"gte=0"`

	// WarmupSamples is the number of bridge samples ignored at start-up,
	// before the writer task has stored its first reading.
	WarmupSamples int `yaml:"warmup_samples" validate:"gte=0"`

	ADC  ADC   `yaml:"adc"`
	LED  LED   `yaml:"led"`
	Keys []Key `yaml:"keys" validate:"required,min=1,dive"`
}

// ADC selects the analog channel.
type ADC struct {
	Path string `yaml:"path" validate:"required"`
}

// LED selects the acknowledgement LED line.
type LED struct {
	Enabled bool   `yaml:"enabled"`
	Chip    string `yaml:"chip" validate:"required_if=Enabled true"`
	Line    int    `yaml:"line" validate:"gte=0"`
}

// Key is one threshold table entry.
type Key struct {
	Button string `yaml:"button" validate:"required,oneof=vol_up vol_down play menu"`
	Min    uint16 `yaml:"min"`
	Max    uint16 `yaml:"max" validate:"gtefield=Min"`
}

// Default returns the configuration of the reference keypad.
func Default() Config {
	keys := make([]Key, len(buttons.DefaultTable))
	for i, k := range buttons.DefaultTable {
		keys[i] = Key{Button: k.Button.String(), Min: k.Min, Max: k.Max}
	}

	return Config{
		SampleInterval: time.Second,
		BridgeInterval: 100 * time.Millisecond,
		BlinkDuration:  50 * time.Millisecond,
		WarmupSamples:  1,
		ADC:            ADC{Path: adc.DefaultPath},
		LED:            LED{Chip: "gpiochip0", Line: 3},
		Keys:           keys,
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Keys, when present in the file, replace the default table entirely.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Keys = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = Default().Keys
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Table converts the configured keys into a classification table.
func (c Config) Table() (buttons.Table, error) {
	table := make(buttons.Table, 0, len(c.Keys))
	for _, k := range c.Keys {
		t, err := buttons.ParseType(k.Button)
		if err != nil {
			return nil, err
		}
		table = append(table, buttons.KeyConfig{Button: t, Min: k.Min, Max: k.Max})
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key table: %w", err)
	}
	return table, nil
}

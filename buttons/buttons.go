// Package buttons models a resistor-ladder keypad read through a single ADC
// channel: the button identities, the shared flag state the writer task keeps
// current, and the threshold table that classifies a raw reading.
package buttons

import "fmt"

// Type identifies a button on the ladder.
type Type uint8

// Known buttons. None is the identity of a reading that matched nothing.
const (
	None Type = iota
	VolUp
	VolDown
	Play
	Menu
)

var typeNames = map[Type]string{
	None:    "none",
	VolUp:   "vol_up",
	VolDown: "vol_down",
	Play:    "play",
	Menu:    "menu",
}

// String returns the configuration name of the button.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType resolves a configuration name such as "vol_up".
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return None, fmt.Errorf("unknown button %q", name)
}

// Buttons holds one pressed flag per button.
type Buttons struct {
	Menu    bool
	Play    bool
	VolUp   bool
	VolDown bool
}

// SetState sets every flag at once.
func (b *Buttons) SetState(menu, play, volUp, volDown bool) {
	b.Menu = menu
	b.Play = play
	b.VolUp = volUp
	b.VolDown = volDown
}

// ResetState sets every flag to value.
func (b *Buttons) ResetState(value bool) {
	b.SetState(value, value, value, value)
}

// Set sets the flag of a single button. None has no flag and is ignored.
func (b *Buttons) Set(t Type, value bool) {
	switch t {
	case VolUp:
		b.VolUp = value
	case VolDown:
		b.VolDown = value
	case Play:
		b.Play = value
	case Menu:
		b.Menu = value
	}
}

// Get returns the flag of a single button. None is never pressed.
func (b Buttons) Get(t Type) bool {
	switch t {
	case VolUp:
		return b.VolUp
	case VolDown:
		return b.VolDown
	case Play:
		return b.Play
	case Menu:
		return b.Menu
	default:
		return false
	}
}

// Apply replaces the flags with the classification of raw against table.
// A reading matching no entry leaves every flag false; a reading matching
// several entries sets all of them.
func (b *Buttons) Apply(table Table, raw uint16) {
	b.ResetState(false)
	for _, t := range table.Classify(raw) {
		b.Set(t, true)
	}
}

// Field returns an extraction function reading one button's flag, suitable
// for sensorflow.NewBridge.
func Field(t Type) func(Buttons) bool {
	return func(b Buttons) bool {
		return b.Get(t)
	}
}

package buttons

import (
	"fmt"
	"strings"
)

// KeyConfig maps an inclusive raw ADC range to a button.
type KeyConfig struct {
	Button Type
	Min    uint16
	Max    uint16
}

// Matches reports whether raw falls within [Min, Max].
func (k KeyConfig) Matches(raw uint16) bool {
	return raw >= k.Min && raw <= k.Max
}

// Table is an ordered list of ranges. Entries may overlap; a reading inside
// several ranges is classified as all of them.
type Table []KeyConfig

// DefaultTable is the calibration of the reference keypad.
var DefaultTable = Table{
	{Button: VolUp, Min: 0, Max: 375},
	{Button: VolDown, Min: 750, Max: 850},
	{Button: Play, Min: 1900, Max: 2000},
	{Button: Menu, Min: 2350, Max: 2450},
}

// Classify returns every button whose range contains raw, in table order.
// The result is empty when nothing matches.
func (t Table) Classify(raw uint16) []Type {
	var matched []Type
	for _, k := range t {
		if k.Matches(raw) {
			matched = append(matched, k.Button)
		}
	}
	return matched
}

// Validate checks that every range is well formed and names a real button.
func (t Table) Validate() error {
	for i, k := range t {
		if k.Button == None {
			return fmt.Errorf("entry %d: button is none", i)
		}
		if k.Min > k.Max {
			return fmt.Errorf("entry %d (%s): min %d exceeds max %d", i, k.Button, k.Min, k.Max)
		}
	}
	return nil
}

// Names joins button names for log output.
func Names(types []Type) string {
	if len(types) == 0 {
		return None.String()
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}

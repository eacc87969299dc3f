package buttons

import (
	"fmt"
	"testing"
)

func TestType_String(t *testing.T) {
	tests := map[Type]string{
		None:     "none",
		VolUp:    "vol_up",
		VolDown:  "vol_down",
		Play:     "play",
		Menu:     "menu",
		Type(42): "Type(42)",
	}
	for typ, want := range tests {
		if typ.String() != want {
			t.Errorf("expected %q, got %q", want, typ.String())
		}
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{None, VolUp, VolDown, Play, Menu} {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", typ, err)
		}
		if got != typ {
			t.Errorf("expected %s, got %s", typ, got)
		}
	}

	if _, err := ParseType("power"); err == nil {
		t.Error("expected an error for an unknown button")
	}
}

func TestButtons_SetAndGet(t *testing.T) {
	var b Buttons

	b.Set(Play, true)
	if !b.Get(Play) || b.Get(Menu) || b.Get(VolUp) || b.Get(VolDown) {
		t.Errorf("expected only play, got %+v", b)
	}

	b.Set(None, true)
	if b.Get(None) {
		t.Error("none must never be pressed")
	}
	if b != (Buttons{Play: true}) {
		t.Errorf("setting none must not change any flag, got %+v", b)
	}

	b.Set(Play, false)
	if b != (Buttons{}) {
		t.Errorf("expected all flags clear, got %+v", b)
	}
}

func TestButtons_SetStateAndReset(t *testing.T) {
	var b Buttons

	b.SetState(true, false, true, false)
	if !b.Menu || b.Play || !b.VolUp || b.VolDown {
		t.Errorf("unexpected state %+v", b)
	}

	b.ResetState(true)
	if b != (Buttons{Menu: true, Play: true, VolUp: true, VolDown: true}) {
		t.Errorf("expected every flag set, got %+v", b)
	}

	b.ResetState(false)
	if b != (Buttons{}) {
		t.Errorf("expected every flag clear, got %+v", b)
	}
}

func TestButtons_Apply(t *testing.T) {
	b := Buttons{Menu: true, VolDown: true}

	b.Apply(DefaultTable, 1950)
	if b != (Buttons{Play: true}) {
		t.Errorf("expected only play after applying 1950, got %+v", b)
	}

	b.Apply(DefaultTable, 3000)
	if b != (Buttons{}) {
		t.Errorf("expected nothing pressed for an unmatched reading, got %+v", b)
	}
}

func TestButtons_ApplyOverlappingRanges(t *testing.T) {
	table := Table{
		{Button: Play, Min: 100, Max: 300},
		{Button: Menu, Min: 200, Max: 400},
	}

	var b Buttons
	b.Apply(table, 250)
	if !b.Play || !b.Menu {
		t.Errorf("expected play and menu for an overlapping reading, got %+v", b)
	}
}

func TestField(t *testing.T) {
	b := Buttons{VolDown: true}

	if !Field(VolDown)(b) {
		t.Error("expected vol_down field to be true")
	}
	if Field(VolUp)(b) {
		t.Error("expected vol_up field to be false")
	}
	if Field(None)(b) {
		t.Error("expected none field to be false")
	}
}

func ExampleButtons_Apply() {
	var b Buttons
	for _, raw := range []uint16{300, 800, 1950, 2400, 3000} {
		b.Apply(DefaultTable, raw)
		fmt.Printf("%4d: %+v\n", raw, b)
	}

	// Output:
	//  300: {Menu:false Play:false VolUp:true VolDown:false}
	//  800: {Menu:false Play:false VolUp:false VolDown:true}
	// 1950: {Menu:false Play:true VolUp:false VolDown:false}
	// 2400: {Menu:true Play:false VolUp:false VolDown:false}
	// 3000: {Menu:false Play:false VolUp:false VolDown:false}
}

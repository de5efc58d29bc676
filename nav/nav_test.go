package nav

import "testing"

func TestMachineStartsClosed(t *testing.T) {
	if got := NewMachine(nil).State(); got != Closed {
		t.Fatalf("initial state = %v, want closed", got)
	}
	var zero State
	if zero != Closed {
		t.Fatal("zero State should be Closed")
	}
}

func TestToggleThenSelect(t *testing.T) {
	m := NewMachine(nil)
	if got := m.Fire(TogglePressed); got != Open {
		t.Fatalf("after toggle: %v, want open", got)
	}
	if got := m.Fire(LinkSelected); got != Closed {
		t.Fatalf("after select: %v, want closed", got)
	}
}

func TestDoubleToggleCloses(t *testing.T) {
	m := NewMachine(nil)
	m.Fire(TogglePressed)
	if got := m.Fire(TogglePressed); got != Closed {
		t.Fatalf("after two toggles: %v, want closed", got)
	}
}

func TestNextTable(t *testing.T) {
	tests := []struct {
		from State
		ev   Event
		want State
	}{
		{Closed, TogglePressed, Open},
		{Open, TogglePressed, Closed},
		{Open, LinkSelected, Closed},
		{Closed, LinkSelected, Closed},
		{Open, Event(99), Open},
		{Closed, Event(0), Closed},
	}
	for _, tt := range tests {
		if got := Next(tt.from, tt.ev); got != tt.want {
			t.Errorf("Next(%v, %v) = %v, want %v", tt.from, tt.ev, got, tt.want)
		}
	}
}

func TestOnChangeOnlyOnTransitions(t *testing.T) {
	var seen []State
	m := NewMachine(func(s State) { seen = append(seen, s) })

	m.Fire(LinkSelected) // closed stays closed
	m.Fire(TogglePressed)
	m.Fire(LinkSelected)
	m.Fire(LinkSelected)

	if len(seen) != 2 || seen[0] != Open || seen[1] != Closed {
		t.Fatalf("onChange saw %v, want [open closed]", seen)
	}
}

func TestParseState(t *testing.T) {
	tests := map[string]State{
		"open":   Open,
		" OPEN ": Open,
		"closed": Closed,
		"":       Closed,
		"bogus":  Closed,
	}
	for in, want := range tests {
		if got := ParseState(in); got != want {
			t.Errorf("ParseState(%q) = %v, want %v", in, got, want)
		}
	}
	if Open.String() != "open" || Closed.String() != "closed" {
		t.Error("String should round-trip through ParseState")
	}
}

func TestParseEvent(t *testing.T) {
	if e, ok := ParseEvent("toggle"); !ok || e != TogglePressed {
		t.Errorf("ParseEvent(toggle) = %v, %v", e, ok)
	}
	if e, ok := ParseEvent("select"); !ok || e != LinkSelected {
		t.Errorf("ParseEvent(select) = %v, %v", e, ok)
	}
	if _, ok := ParseEvent("hover"); ok {
		t.Error("ParseEvent(hover) should fail")
	}
}

// Package nav is the two-state machine behind the mobile navigation menu.
package nav

import (
	"strings"
	"sync"
)

// State is whether the mobile menu overlay is showing.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ParseState maps "open" to Open and anything else to Closed.
func ParseState(s string) State {
	if strings.EqualFold(strings.TrimSpace(s), "open") {
		return Open
	}
	return Closed
}

// Event is a user action on the navigation bar.
type Event int

const (
	// TogglePressed is a press of the menu button.
	TogglePressed Event = iota + 1
	// LinkSelected is a click on any entry of the open overlay.
	LinkSelected
)

func (e Event) String() string {
	switch e {
	case TogglePressed:
		return "toggle"
	case LinkSelected:
		return "select"
	default:
		return "unknown"
	}
}

// ParseEvent maps "toggle" and "select" to their events. ok is false for
// anything else.
func ParseEvent(s string) (e Event, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toggle":
		return TogglePressed, true
	case "select":
		return LinkSelected, true
	}
	return 0, false
}

// Next returns the state after e. The toggle flips the menu; selecting a
// link always closes it. Unknown events leave the state unchanged.
func Next(s State, e Event) State {
	switch e {
	case TogglePressed:
		if s == Open {
			return Closed
		}
		return Open
	case LinkSelected:
		return Closed
	}
	return s
}

// Machine holds the current menu state for one navigation bar.
type Machine struct {
	mu       sync.Mutex
	state    State
	onChange func(State)
}

// NewMachine returns a closed machine. onChange, if non-nil, runs after every
// transition that changes the state.
func NewMachine(onChange func(State)) *Machine {
	return &Machine{onChange: onChange}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Fire applies e and returns the resulting state.
func (m *Machine) Fire(e Event) State {
	m.mu.Lock()
	prev := m.state
	m.state = Next(prev, e)
	next := m.state
	m.mu.Unlock()

	if next != prev && m.onChange != nil {
		m.onChange(next)
	}
	return next
}

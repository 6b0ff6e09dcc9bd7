package registry

import (
	metaruntime "github.com/objkit/meta-runtime"
)

// Handle is an opaque reference to an object in a Table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Mode distinguishes the two late-bound composition mechanisms.
type Mode uint8

const (
	// ModeForward executes the resolved method against the provider's state.
	ModeForward Mode = iota + 1
	// ModeDelegate executes the resolved method against the receiver's state.
	ModeDelegate
)

func (m Mode) String() string {
	switch m {
	case ModeForward:
		return "forward"
	case ModeDelegate:
		return "delegate"
	default:
		return "unknown"
	}
}

// Binding is the record of one live trampoline: which receiver's slot it
// occupies, which provider it resolves against, and under which mode. Mixin
// application produces no Binding; a reference copy is not a binding.
type Binding struct {
	Receiver metaruntime.Composable
	Provider metaruntime.Composable
	Method   string
	Mode     Mode
}

// Event types for binding lifecycle notifications.
type EventType uint8

const (
	EventBound EventType = iota
	EventRebound
	EventUnbound
)

// Event represents a binding lifecycle event. For EventRebound, Binding is
// the new record and Previous the one it displaced.
type Event struct {
	Type     EventType
	Binding  Binding
	Previous Binding
}

// Observer receives notifications about binding lifecycle events.
type Observer interface {
	OnBindingEvent(Event)
}

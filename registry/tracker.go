package registry

import (
	"sort"
	"sync"

	metaruntime "github.com/objkit/meta-runtime"
)

// Tracker materializes the binding records behind forwarding and delegating
// trampolines: one record per (receiver, method slot), replaced when a later
// composition overwrites the slot. A tracker is optional; the trampolines
// themselves dispatch without it.
//
// Receivers are used as map keys, so tracked receivers must have a
// comparable dynamic type (pointers, as with *object.Object, are fine).
type Tracker struct {
	mu        sync.RWMutex
	bindings  map[bindingKey]Binding
	observers []Observer
}

type bindingKey struct {
	receiver metaruntime.Composable
	method   string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		bindings: make(map[bindingKey]Binding),
	}
}

// Bind records b, displacing any previous record for the same receiver and
// method slot. Observers see EventBound for a fresh slot and EventRebound
// for a displacement.
func (t *Tracker) Bind(b Binding) {
	key := bindingKey{receiver: b.Receiver, method: b.Method}

	t.mu.Lock()
	prev, existed := t.bindings[key]
	t.bindings[key] = b
	t.mu.Unlock()

	if existed {
		t.notify(Event{Type: EventRebound, Binding: b, Previous: prev})
	} else {
		t.notify(Event{Type: EventBound, Binding: b})
	}
}

// Unbind drops the record for a receiver's method slot, reporting whether
// one existed. Used when a slot is overwritten by something that is not a
// trampoline, such as a mixin copy.
func (t *Tracker) Unbind(receiver metaruntime.Composable, method string) bool {
	key := bindingKey{receiver: receiver, method: method}

	t.mu.Lock()
	prev, existed := t.bindings[key]
	delete(t.bindings, key)
	t.mu.Unlock()

	if existed {
		t.notify(Event{Type: EventUnbound, Binding: prev})
	}
	return existed
}

// Lookup returns the record for a receiver's method slot.
func (t *Tracker) Lookup(receiver metaruntime.Composable, method string) (Binding, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	b, ok := t.bindings[bindingKey{receiver: receiver, method: method}]
	return b, ok
}

// BindingsOf returns all records for a receiver, sorted by method name.
func (t *Tracker) BindingsOf(receiver metaruntime.Composable) []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Binding
	for key, b := range t.bindings {
		if key.receiver == receiver {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// Len returns the number of live records.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}

// Subscribe adds an observer for binding lifecycle events.
func (t *Tracker) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Tracker) Unsubscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Tracker) notify(e Event) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, o := range t.observers {
		o.OnBindingEvent(e)
	}
}

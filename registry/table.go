package registry

import (
	"sync"

	metaruntime "github.com/objkit/meta-runtime"
	"github.com/objkit/meta-runtime/errors"
)

// Table maps integer handles to composable objects, with optional named
// resolution. Handles are reused from a free list after removal, so holders
// must not use a handle after removing it.
type Table struct {
	mu       sync.RWMutex
	entries  []entry
	freeList []Handle
	names    map[string]Handle
	closed   bool
}

type entry struct {
	obj   metaruntime.Composable
	name  string
	valid bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		names:    make(map[string]Handle),
	}
}

// Register stores an object and returns its handle. A non-empty name makes
// the object resolvable by Resolve; names are unique per table. The empty
// name registers the object as anonymous.
func (t *Table) Register(name string, obj metaruntime.Composable) (Handle, error) {
	if obj == nil {
		return 0, errors.InvalidArgument(errors.PhaseRegistry, "object is nil")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, errors.Closed(errors.PhaseRegistry, "table")
	}
	if name != "" {
		if _, taken := t.names[name]; taken {
			return 0, errors.New(errors.PhaseRegistry, errors.KindInvalidArgument).
				Object(name).
				Detail("name already registered").
				Build()
		}
	}

	e := entry{obj: obj, name: name, valid: true}

	var handle Handle
	if len(t.freeList) > 0 {
		handle = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}

	if name != "" {
		t.names[name] = handle
	}
	return handle, nil
}

// Get retrieves an object by handle.
func (t *Table) Get(handle Handle) (metaruntime.Composable, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(handle) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].obj, true
}

// Resolve retrieves an object by registered name.
func (t *Table) Resolve(name string) (metaruntime.Composable, bool) {
	if name == "" {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	handle, ok := t.names[name]
	if !ok {
		return nil, false
	}
	return t.entries[handle-1].obj, true
}

// Remove drops an object and returns (object, true) if it was present. The
// handle goes back on the free list and its name becomes available again.
func (t *Table) Remove(handle Handle) (metaruntime.Composable, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(handle) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}

	e := t.entries[idx]
	t.entries[idx] = entry{}
	t.freeList = append(t.freeList, handle)
	if e.name != "" {
		delete(t.names, e.name)
	}
	return e.obj, true
}

// Len returns the number of registered objects.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Each iterates over registered objects until fn returns false.
func (t *Table) Each(fn func(Handle, string, metaruntime.Composable) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if !e.valid {
			continue
		}
		if !fn(Handle(i+1), e.name, e.obj) {
			return
		}
	}
}

// Close drops all objects and stops accepting registrations.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.entries = nil
	t.freeList = nil
	t.names = make(map[string]Handle)
	return nil
}

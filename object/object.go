package object

import (
	"context"
	"sort"
	"sync"

	metaruntime "github.com/objkit/meta-runtime"
	"github.com/objkit/meta-runtime/errors"
)

// Object is the standard Composable implementation: an RWMutex-guarded table
// of method slots plus a table of data fields. The zero value is not usable;
// construct with New or NewNamed.
type Object struct {
	name    string
	mu      sync.RWMutex
	methods map[string]metaruntime.Method
	fields  map[string]any
}

var _ metaruntime.Composable = (*Object)(nil)

// New creates an empty object.
func New() *Object {
	return NewNamed("")
}

// NewNamed creates an empty object carrying a diagnostic name. The name shows
// up in dispatch errors and is what registry tables resolve by.
func NewNamed(name string) *Object {
	return &Object{
		name:    name,
		methods: make(map[string]metaruntime.Method),
		fields:  make(map[string]any),
	}
}

// Name returns the diagnostic name, "" for anonymous objects.
func (o *Object) Name() string {
	return o.name
}

// Method returns the callable currently stored under name. The slot table is
// read fresh on every call; nothing is cached, which is what makes
// late-bound dispatch observable.
func (o *Object) Method(name string) (metaruntime.Method, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.methods[name]
	return m, ok
}

// SetMethod stores m under name, replacing any existing slot.
func (o *Object) SetMethod(name string, m metaruntime.Method) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.methods[name] = m
}

// RemoveMethod drops the slot under name and reports whether it existed.
func (o *Object) RemoveMethod(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.methods[name]
	delete(o.methods, name)
	return ok
}

// MethodNames returns a sorted copy of all method slot names.
func (o *Object) MethodNames() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	names := make([]string, 0, len(o.methods))
	for name := range o.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get reads a data field.
func (o *Object) Get(field string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.fields[field]
	return v, ok
}

// Set writes a data field.
func (o *Object) Set(field string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[field] = value
}

// Int reads a data field of any composable as an int, returning 0 when the
// field is absent or holds another type. Covers the common counter idiom in
// method bodies, which see their execution context as the interface.
func Int(o metaruntime.Composable, field string) int {
	v, ok := o.Get(field)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// Call resolves the method slot under name and invokes it with the object
// itself as execution context. An absent slot is a dispatch error, never
// swallowed.
func (o *Object) Call(ctx context.Context, name string, args ...any) (any, error) {
	m, ok := o.Method(name)
	if !ok {
		return nil, errors.MissingMethod(o.name, name)
	}
	return m(ctx, o, args...)
}

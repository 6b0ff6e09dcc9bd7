package metaruntime

import "context"

// Method is the callable stored in a method slot. self is the execution
// context: the object whose data slots the body reads and writes. Mixin and
// delegation pass the receiver as self; forwarding passes the provider.
type Method func(ctx context.Context, self Composable, args ...any) (any, error)

// Named is implemented by composables that carry a diagnostic name.
type Named interface {
	Name() string
}

// Composable is the uniform object model shared by all composition
// primitives: a mutable table of named method slots plus named data fields.
type Composable interface {
	// Method returns the callable currently stored under name. The lookup is
	// performed fresh on every call; implementations must not cache results.
	Method(name string) (Method, bool)

	// SetMethod stores m under name, replacing any existing slot.
	SetMethod(name string, m Method)

	// RemoveMethod drops the slot under name and reports whether it existed.
	RemoveMethod(name string) bool

	// MethodNames returns the names of all method slots.
	MethodNames() []string

	// Get reads a data field.
	Get(field string) (any, bool)

	// Set writes a data field.
	Set(field string, value any)

	// Call resolves the method slot under name and invokes it with the
	// object itself as execution context.
	Call(ctx context.Context, name string, args ...any) (any, error)
}

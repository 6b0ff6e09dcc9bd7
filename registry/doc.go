// Package registry provides handle-based object storage and binding records.
//
// # Handle Table
//
// The Table maps integer handles to composable objects, optionally resolvable
// by name. It is the indirection layer declarative plans compose through:
//
//	table := registry.NewTable()
//
//	// Register an object under a name
//	h, err := table.Register("counter", counter)
//
//	// Resolve by name or handle
//	obj, ok := table.Resolve("counter")
//	obj, ok = table.Get(h)
//
// Handles are reused after Remove; a held handle is only meaningful while its
// object is registered.
//
// # Binding Records
//
// A Tracker records which (receiver, method) slots are currently occupied by
// forwarding or delegating trampolines and against which provider they
// resolve. The compose package feeds it when constructed with WithTracker:
//
//	tracker := registry.NewTracker()
//	c := compose.New(compose.WithTracker(tracker))
//
//	c.Delegate(alice, counter, "inc")
//	tracker.BindingsOf(alice) // [{alice counter inc delegate}]
//
// Mixin application produces no record: a copied reference has no provider to
// resolve against. Observers can Subscribe for EventBound, EventRebound and
// EventUnbound notifications.
package registry

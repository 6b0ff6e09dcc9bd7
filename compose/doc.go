// Package compose implements the three composition primitives.
//
// All three operate on the uniform object model and differ only in binding
// time and state ownership:
//
//	Apply     early-bound   receiver executes, receiver owns state
//	Forward   late-bound    provider executes, provider owns state
//	Delegate  late-bound    receiver executes, receiver owns state
//
// Apply copies method references from a metaobject into the receiver's own
// slot table; the same callable ends up shared by every receiver it was
// applied to, while each receiver's data fields stay independent.
//
// Forward and Delegate install trampolines: methods whose body re-resolves
// the provider's slot by name on every invocation and then executes the
// resolved callable under the chosen execution context. Because resolution
// happens at call time, replacing a provider's method after installation is
// observable on the next call, and removing it surfaces a missing_method
// error to the caller.
//
// The primitives are independent and may target the same receiver freely; a
// colliding method name is simply overwritten, so the most recent operation
// for that name wins regardless of which primitive installed it.
//
// Package-level Apply, Forward and Delegate use a default Composer. Build
// one with New to attach a zap logger or a registry.Tracker that materializes
// binding records:
//
//	c := compose.New(
//	    compose.WithLogger(logger),
//	    compose.WithTracker(tracker),
//	)
//	c.Delegate(alice, counter, "inc")
package compose

// Package metaruntime provides an object-composition runtime: independently
// defined behavior ("metaobjects") is attached to domain objects ("receivers")
// through three mechanisms with distinct binding-time and state-ownership
// semantics.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	metaruntime/     Root package with the Composable interface and Method type
//	├── object/      Uniform object model: method slots, data fields, reflection
//	├── compose/     The three primitives: Apply (mixin), Forward, Delegate
//	├── registry/    Handle table, named resolution, binding records
//	├── plan/        Declarative TOML composition manifests
//	└── errors/      Structured error types for debugging
//
// # The Three Primitives
//
// Mixin copies method references from a metaobject into the receiver's own
// slot table. Binding happens once, at composition time; the copied body
// executes against the state of whichever receiver holds it:
//
//	counter := object.New()
//	counter.SetMethod("inc", incBody)
//
//	compose.Apply(a, counter)
//	compose.Apply(b, counter)
//	a.Call(ctx, "inc") // 1 - a and b share the body, not the count
//	b.Call(ctx, "inc") // 1
//	a.Call(ctx, "inc") // 2
//
// Forwarding installs trampolines on the receiver. Each invocation re-resolves
// the provider's current method by name and executes it against the provider's
// state, so every receiver forwarding to the same provider observes the same
// state surface:
//
//	compose.Forward(x, account, "total")
//	compose.Forward(y, account, "total")
//	account.Set("sum", 5)
//	x.Call(ctx, "total") // 5
//	y.Call(ctx, "total") // 5
//
// Delegation installs the same late-bound trampolines, but the resolved body
// executes against the receiver's state. The provider supplies (and may later
// replace) the behavior; each receiver keeps its own data:
//
//	compose.Delegate(x, ticker, "bump")
//	compose.Delegate(y, ticker, "bump")
//	x.Call(ctx, "bump") // x.count = 1
//	y.Call(ctx, "bump") // y.count = 1, independent of x
//
// # Binding Time
//
// Mixin is early-bound: the slot holds the same Method value the metaobject
// held at apply time, and replacing the metaobject's slot afterwards has no
// effect on receivers. Forwarding and delegation are late-bound: the
// provider's slot is looked up on every invocation, so replacing or removing
// it is observable on the next call through the trampoline. A removed slot
// surfaces a missing_method error to the trampoline's caller.
//
// A receiver holds at most one implementation per method name; the most
// recent composition for that name wins, whichever primitive installed it.
//
// # Thread Safety
//
// Object slot tables are safe for concurrent use. The trampoline's
// lookup-then-call sequence is not atomic: callers that mutate a provider's
// method slots concurrently with invocation through bound trampolines must
// serialize those mutations themselves.
package metaruntime

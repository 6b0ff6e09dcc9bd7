// Package plan applies declarative TOML composition manifests.
//
// A manifest lists compositions over objects registered in a registry.Table,
// by name:
//
//	[[composition]]
//	receiver = "alice"
//	provider = "counter"
//	mode     = "delegate"
//	methods  = ["inc"]
//
//	[[composition]]
//	receiver = "alice"
//	provider = "account"
//	mode     = "forward"
//	methods  = ["total", "deposit"]
//
// Mode is one of "mixin", "forward" or "delegate". Mixin copies every method
// the provider has, so its entries carry no methods list; the late-bound
// modes require one. Compositions execute in manifest order, which is
// observable when entries touch the same method name on one receiver.
//
// The manifest only wires already-constructed objects together: behavior
// stays in Go code, registered under names by the host application.
//
//	p, err := plan.Decode(manifest)
//	if err != nil { ... }
//	if err := p.Apply(table, nil); err != nil { ... }
package plan

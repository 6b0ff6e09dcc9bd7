// Package object implements the uniform object model shared by all
// composition primitives.
//
// An Object is a mutable table of named method slots (name -> Method) plus
// named data fields. Method lookup is performed fresh on every access -
// nothing is cached - which is the property late-bound composition depends
// on: replacing a provider's slot after trampolines were installed changes
// what the next call through those trampolines executes.
//
// # Building Metaobjects
//
// Slots can be populated directly:
//
//	counter := object.NewNamed("counter")
//	counter.SetMethod("inc", func(ctx context.Context, self metaruntime.Composable, args ...any) (any, error) {
//	    n := object.Int(self, "n") + 1
//	    self.Set("n", n)
//	    return n, nil
//	})
//
// or harvested from a Go struct's exported methods via FromStruct, which
// follows the same PascalCase-to-kebab-case naming used for the slot table.
//
// # Execution Context
//
// A method body never touches the object it is stored on; it reads and
// writes the self parameter it is invoked with. Which object that is - the
// receiver or the provider - is decided by the composition primitive, not by
// the method.
package object

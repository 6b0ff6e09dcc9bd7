// Package errors provides structured error types for the meta-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the object and method slot involved plus
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCompose, errors.KindInvalidArgument).
//		Object("alice").
//		Method("inc").
//		Detail("provider is nil").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidArgument(errors.PhaseCompose, "target is nil")
//	err := errors.MissingMethod("account", "total")
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind, so callers can test for a category without
// caring about the detail:
//
//	stderrors.Is(err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindMissingMethod})
package errors

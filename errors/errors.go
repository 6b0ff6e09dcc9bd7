package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompose  Phase = "compose"  // composition-call time
	PhaseDispatch Phase = "dispatch" // trampoline invocation
	PhaseRegistry Phase = "registry" // handle table operations
	PhasePlan     Phase = "plan"     // manifest decoding and execution
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindMissingMethod   Kind = "missing_method"
	KindNotFound        Kind = "not_found"
	KindInvalidMode     Kind = "invalid_mode"
	KindDecode          Kind = "decode"
	KindClosed          Kind = "closed"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Object string // name of the object involved, if known
	Method string // method slot name, if the error concerns one
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Object != "" || e.Method != "" {
		b.WriteString(" at ")
		if e.Object != "" {
			b.WriteString(e.Object)
		}
		if e.Method != "" {
			if e.Object != "" {
				b.WriteByte('.')
			}
			b.WriteString(e.Method)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Object sets the name of the object involved
func (b *Builder) Object(name string) *Builder {
	b.err.Object = name
	return b
}

// Method sets the method slot name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// MissingMethod creates a missing method dispatch error.
// object names the provider (or receiver) whose slot table lacks the method.
func MissingMethod(object, method string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindMissingMethod,
		Object: object,
		Method: method,
		Detail: fmt.Sprintf("method %q not currently bound", method),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidMode creates an invalid composition mode error
func InvalidMode(phase Phase, mode string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidMode,
		Detail: fmt.Sprintf("unknown composition mode %q", mode),
	}
}

// Decode creates a manifest decoding error
func Decode(detail string, cause error) *Error {
	return &Error{
		Phase:  PhasePlan,
		Kind:   KindDecode,
		Detail: detail,
		Cause:  cause,
	}
}

// Closed creates an error for operations against a closed table
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

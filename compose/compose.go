package compose

import (
	"context"

	"go.uber.org/zap"

	metaruntime "github.com/objkit/meta-runtime"
	"github.com/objkit/meta-runtime/errors"
	"github.com/objkit/meta-runtime/registry"
)

// Composer executes composition operations, optionally logging them and
// recording binding state in a registry.Tracker. The zero-option Composer is
// what the package-level Apply, Forward and Delegate use.
type Composer struct {
	logger  *zap.Logger
	tracker *registry.Tracker
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for debug-level composition traces.
func WithLogger(l *zap.Logger) Option {
	return func(c *Composer) {
		c.logger = l
	}
}

// WithTracker records every trampoline installation as a binding record and
// clears records displaced by mixin copies.
func WithTracker(t *registry.Tracker) Option {
	return func(c *Composer) {
		c.tracker = t
	}
}

// New creates a Composer.
func New(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Apply copies every method-slot reference from source onto target,
// overwriting colliding names. The copy is by reference: the target ends up
// holding the same Method values the source holds, not wrappers around them,
// so later replacement of a source slot is invisible to the target. Source
// state is untouched; an empty source is a no-op.
func (c *Composer) Apply(target, source metaruntime.Composable) (metaruntime.Composable, error) {
	if target == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "target is nil")
	}
	if source == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "source is nil")
	}

	for _, name := range source.MethodNames() {
		m, ok := source.Method(name)
		if !ok {
			// Slot vanished between enumeration and lookup.
			continue
		}
		target.SetMethod(name, m)
		if c.tracker != nil {
			// A copied reference is not a binding; drop any stale record
			// left by an earlier Forward/Delegate on this slot.
			c.tracker.Unbind(target, name)
		}
		c.log().Debug("mixin copy",
			zap.String("method", name),
			zap.String("target", objectName(target)),
			zap.String("source", objectName(source)))
	}
	return target, nil
}

// Forward installs, for each name, a trampoline on receiver that resolves
// the provider's current method under that name at every invocation and
// executes it with the provider as execution context. All receivers
// forwarding to one provider therefore share the provider's state.
//
// The names need not exist on the provider yet; an absent name at call time
// surfaces a missing_method dispatch error to the trampoline's caller.
func (c *Composer) Forward(receiver, provider metaruntime.Composable, names ...string) (metaruntime.Composable, error) {
	return c.install(receiver, provider, registry.ModeForward, names)
}

// Delegate is Forward with the one essential difference: the resolved method
// executes with the receiver as execution context. The provider supplies and
// may later swap the behavior, but state reads and writes land on each
// receiver's own fields.
func (c *Composer) Delegate(receiver, provider metaruntime.Composable, names ...string) (metaruntime.Composable, error) {
	return c.install(receiver, provider, registry.ModeDelegate, names)
}

func (c *Composer) install(receiver, provider metaruntime.Composable, mode registry.Mode, names []string) (metaruntime.Composable, error) {
	if receiver == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "receiver is nil")
	}
	if provider == nil {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "provider is nil")
	}
	if len(names) == 0 {
		return nil, errors.InvalidArgument(errors.PhaseCompose, "no method names given")
	}

	for _, name := range names {
		if name == "" {
			return nil, errors.InvalidArgument(errors.PhaseCompose, "empty method name")
		}

		receiver.SetMethod(name, trampoline(provider, name, mode))
		if c.tracker != nil {
			c.tracker.Bind(registry.Binding{
				Receiver: receiver,
				Provider: provider,
				Method:   name,
				Mode:     mode,
			})
		}
		c.log().Debug("trampoline installed",
			zap.String("method", name),
			zap.String("mode", mode.String()),
			zap.String("receiver", objectName(receiver)),
			zap.String("provider", objectName(provider)))
	}
	return receiver, nil
}

// trampoline builds the installed method: a two-step dispatch that (a) looks
// up the method currently bound under name on provider, fresh on every
// invocation, and (b) invokes it with the chosen execution context, passing
// arguments and result through unchanged.
func trampoline(provider metaruntime.Composable, name string, mode registry.Mode) metaruntime.Method {
	return func(ctx context.Context, self metaruntime.Composable, args ...any) (any, error) {
		m, ok := provider.Method(name)
		if !ok {
			return nil, errors.MissingMethod(objectName(provider), name)
		}
		exec := self
		if mode == registry.ModeForward {
			exec = provider
		}
		return m(ctx, exec, args...)
	}
}

func objectName(o metaruntime.Composable) string {
	if named, ok := o.(metaruntime.Named); ok {
		return named.Name()
	}
	return ""
}

var std = New()

// Apply copies source's method slots onto target using the default Composer.
func Apply(target, source metaruntime.Composable) (metaruntime.Composable, error) {
	return std.Apply(target, source)
}

// Forward installs forwarding trampolines using the default Composer.
func Forward(receiver, provider metaruntime.Composable, names ...string) (metaruntime.Composable, error) {
	return std.Forward(receiver, provider, names...)
}

// Delegate installs delegating trampolines using the default Composer.
func Delegate(receiver, provider metaruntime.Composable, names ...string) (metaruntime.Composable, error) {
	return std.Delegate(receiver, provider, names...)
}

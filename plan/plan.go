package plan

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/objkit/meta-runtime/compose"
	"github.com/objkit/meta-runtime/errors"
	"github.com/objkit/meta-runtime/registry"
)

// Composition modes accepted in manifests.
const (
	ModeMixin    = "mixin"
	ModeForward  = "forward"
	ModeDelegate = "delegate"
)

// Plan is a decoded composition manifest. Compositions execute in manifest
// order; order matters because a later composition overwrites colliding
// method names on the same receiver.
type Plan struct {
	Compositions []Composition `toml:"composition"`
}

// Composition is one entry in a manifest. Receiver and Provider name objects
// registered in the table the plan is applied against.
type Composition struct {
	Receiver string   `toml:"receiver"`
	Provider string   `toml:"provider"`
	Mode     string   `toml:"mode"`
	Methods  []string `toml:"methods"`
}

// Decode parses and validates a TOML manifest.
func Decode(data []byte) (*Plan, error) {
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Decode("parse manifest", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Plan) validate() error {
	for i, c := range p.Compositions {
		at := fmt.Sprintf("composition %d", i)
		if c.Receiver == "" {
			return errors.InvalidArgument(errors.PhasePlan, at+": receiver is required")
		}
		if c.Provider == "" {
			return errors.InvalidArgument(errors.PhasePlan, at+": provider is required")
		}
		switch c.Mode {
		case ModeMixin:
			if len(c.Methods) != 0 {
				return errors.InvalidArgument(errors.PhasePlan,
					at+": mixin copies every method, methods list is not allowed")
			}
		case ModeForward, ModeDelegate:
			if len(c.Methods) == 0 {
				return errors.InvalidArgument(errors.PhasePlan, at+": methods list is required")
			}
			for _, m := range c.Methods {
				if m == "" {
					return errors.InvalidArgument(errors.PhasePlan, at+": empty method name")
				}
			}
		default:
			return errors.InvalidMode(errors.PhasePlan, c.Mode)
		}
	}
	return nil
}

// Apply executes the plan against objects registered in table, in manifest
// order. A nil composer uses the package-default compose operations.
func (p *Plan) Apply(table *registry.Table, c *compose.Composer) error {
	if table == nil {
		return errors.InvalidArgument(errors.PhasePlan, "table is nil")
	}
	if c == nil {
		c = compose.New()
	}

	for i, comp := range p.Compositions {
		receiver, ok := table.Resolve(comp.Receiver)
		if !ok {
			return errors.NotFound(errors.PhasePlan, "receiver", comp.Receiver)
		}
		provider, ok := table.Resolve(comp.Provider)
		if !ok {
			return errors.NotFound(errors.PhasePlan, "provider", comp.Provider)
		}

		var err error
		switch comp.Mode {
		case ModeMixin:
			_, err = c.Apply(receiver, provider)
		case ModeForward:
			_, err = c.Forward(receiver, provider, comp.Methods...)
		case ModeDelegate:
			_, err = c.Delegate(receiver, provider, comp.Methods...)
		default:
			err = errors.InvalidMode(errors.PhasePlan, comp.Mode)
		}
		if err != nil {
			return errors.Wrap(errors.PhasePlan, errors.KindInvalidArgument, err,
				fmt.Sprintf("composition %d (%s -> %s)", i, comp.Receiver, comp.Provider))
		}
	}
	return nil
}

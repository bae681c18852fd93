package statemux

import (
	"fmt"
	"reflect"
)

// Definition collects declared states before building a Machine.
type Definition struct {
	slots []StateSlot
}

// NewDefinition creates an empty machine definition.
func NewDefinition() *Definition {
	return &Definition{}
}

// Add declares the next state. Declaration order is significant: the
// first state added is the machine's initial state, and positions are
// assigned in declaration order.
func (d *Definition) Add(slot StateSlot) *Definition {
	d.slots = append(d.slots, slot)
	return d
}

// Validate checks the definition for configuration errors: an empty state
// set, a state type declared twice, a state without a handler, a Will
// with a duplicate event mapping or no fallback, and a rule whose
// transition target is not a declared state type.
func (d *Definition) Validate() error {
	if len(d.slots) == 0 {
		return fmt.Errorf("no states defined")
	}

	declared := make(map[reflect.Type]bool, len(d.slots))
	for _, s := range d.slots {
		if declared[s.key] {
			return fmt.Errorf("state type %q declared twice", s.name)
		}
		declared[s.key] = true
	}

	for _, s := range d.slots {
		if s.handler == nil {
			return fmt.Errorf("state %q has no event handler", s.name)
		}
		if s.plan != nil {
			err := s.plan.validate(func(t reflect.Type) bool { return declared[t] })
			if err != nil {
				return fmt.Errorf("state %q: %w", s.name, err)
			}
		}
	}

	return nil
}

// Build creates a Machine from the definition. Every declared state value
// is copied into the machine, so each Build produces a machine that owns
// its states exclusively. The first declared state is current; its entry
// operation does not run.
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	m := &Machine{
		states: make([]StateSlot, len(d.slots)),
		index:  make(map[reflect.Type]int, len(d.slots)),
		logger: Logger,
	}
	for i, s := range d.slots {
		m.states[i] = s.clone()
		m.index[s.key] = i
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

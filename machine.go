package statemux

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

// Machine is the runtime dispatch engine: it owns one instance of every
// declared state type and a marker for which of them is current.
//
// A Machine is not safe for concurrent use; Handle runs to completion on
// the caller's goroutine before returning. A handler or entry operation
// may itself call Handle on the same machine, but the ordering effects of
// doing so are unspecified: the nested call observes whatever state is
// current at that moment.
type Machine struct {
	states  []StateSlot
	index   map[reflect.Type]int
	current int

	logger             *slog.Logger
	transitionCallback func(from, to string)
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithTransitionCallback sets a callback invoked after each state change
func WithTransitionCallback(fn func(from, to string)) MachineOption {
	return func(m *Machine) {
		m.transitionCallback = fn
	}
}

// OnTransition sets a callback invoked after each state change.
func (m *Machine) OnTransition(fn func(from, to string)) {
	m.transitionCallback = fn
}

// Handle delivers one event: the current state's handler produces exactly
// one action, and that action is applied before Handle returns. A nil
// action is treated as Nothing.
func (m *Machine) Handle(event Event) {
	slot := &m.states[m.current]
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("dispatching event", "event", eventName(event), "state", slot.name)
	}
	action := slot.handler.Handle(event)
	if action == nil {
		return
	}
	action.apply(m, slot.ref, event)
}

// CurrentState returns the type name of the current state.
func (m *Machine) CurrentState() string {
	return m.states[m.current].name
}

// Len returns the number of declared states.
func (m *Machine) Len() int {
	return len(m.states)
}

// Clone duplicates the machine. Every owned state is copied value-wise
// into fresh storage, and the clone's current marker is re-derived from
// the position the original held, so the declared type that was current
// survives the copy even though all storage addresses change. The clone
// shares nothing with the original apart from the logger and callback.
func (m *Machine) Clone() *Machine {
	c := &Machine{
		states:             make([]StateSlot, len(m.states)),
		index:              m.index,
		current:            m.current,
		logger:             m.logger,
		transitionCallback: m.transitionCallback,
	}
	for i, s := range m.states {
		c.states[i] = s.clone()
	}
	return c
}

// setCurrent moves the current marker and reports the change.
func (m *Machine) setCurrent(i int) *StateSlot {
	from := m.states[m.current].name
	m.current = i
	slot := &m.states[i]
	m.logger.Debug("transition", "from", from, "to", slot.name)
	if m.transitionCallback != nil && from != slot.name {
		m.transitionCallback(from, slot.name)
	}
	return slot
}

// position resolves a declared state type to its slot index.
func (m *Machine) position(t reflect.Type) int {
	i, ok := m.index[t]
	if !ok {
		panic(fmt.Sprintf("statemux: state type %s is not declared on this machine", t))
	}
	return i
}

// Transition makes S the current state directly, without running its
// entry operation, and returns the machine's instance of S for mutation.
// Naming a type that is not declared on the machine is a programming
// error and panics.
func Transition[S any](m *Machine) *S {
	slot := m.setCurrent(m.position(typeFor[S]()))
	return slot.ref.(*S)
}

// StateOf returns the machine's owned instance of S without changing
// which state is current. It panics if S is not declared.
func StateOf[S any](m *Machine) *S {
	return m.states[m.position(typeFor[S]())].ref.(*S)
}

// Is reports whether the current state is of type S.
func Is[S any](m *Machine) bool {
	i, ok := m.index[typeFor[S]()]
	return ok && i == m.current
}

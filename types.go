package statemux

import "log/slog"

// Action describes the effect a handler wants applied to the machine.
// The set of actions is closed: Nothing, TransitionTo, OneOf and Maybe.
// Actions are transient values, produced and consumed within a single
// Handle call.
type Action interface {
	apply(m *Machine, from any, event Event)
}

// Handler reacts to one event by producing exactly one Action. Every
// declared state must implement it, either with its own Handle method or
// by embedding a Will.
type Handler interface {
	Handle(event Event) Action
}

// Enterer is implemented by states that want to observe the event that
// transitioned into them. OnEnter runs exactly once per applied
// TransitionTo, after the current marker has moved. Direct transitions
// via Transition do not run it.
type Enterer interface {
	OnEnter(event Event)
}

// Logger is the default logger used when none is provided
var Logger = slog.Default()

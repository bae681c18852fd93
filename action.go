package statemux

import "reflect"

// Nothing is the no-op action: the machine stays in its current state.
type Nothing struct{}

func (Nothing) apply(*Machine, any, Event) {}

// TransitionTo makes S the current state and then runs its entry
// operation, if it has one, with the triggering event. S must be one of
// the machine's declared state types; when the action is produced through
// On or Maybe rules inside a Will, that is checked when the machine is
// built.
type TransitionTo[S any] struct{}

func (TransitionTo[S]) apply(m *Machine, _ any, event Event) {
	slot := m.setCurrent(m.position(typeFor[S]()))
	if slot.enter != nil {
		slot.enter(event)
	}
}

func (TransitionTo[S]) transitionTarget() reflect.Type { return typeFor[S]() }

// OneOf holds exactly one of several alternative actions, chosen by the
// handler at dispatch time. Applying it forwards to whichever alternative
// is held; the zero OneOf holds nothing and is a no-op.
type OneOf struct {
	held Action
}

// Pick selects the alternative a OneOf forwards to.
func Pick(a Action) OneOf { return OneOf{held: a} }

func (o OneOf) apply(m *Machine, from any, event Event) {
	if o.held != nil {
		o.held.apply(m, from, event)
	}
}

// Maybe is the OneOf of A and Nothing: "conditionally perform A". A
// handler whose outcome depends on runtime data returns Just when the
// action should run and None when it should not.
type Maybe[A Action] struct {
	OneOf
}

// Just yields a Maybe that performs a.
func Just[A Action](a A) Maybe[A] { return Maybe[A]{OneOf{held: a}} }

// None yields a Maybe that performs nothing.
func None[A Action]() Maybe[A] { return Maybe[A]{OneOf{held: Nothing{}}} }

func (Maybe[A]) transitionTarget() reflect.Type {
	var a A
	if t, ok := any(a).(targeted); ok {
		return t.transitionTarget()
	}
	return nil
}

// targeted is implemented by actions whose transition destination is
// known statically; Validate uses it to check rules against the declared
// state set.
type targeted interface {
	transitionTarget() reflect.Type
}

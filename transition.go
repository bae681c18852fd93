package statemux

import (
	"fmt"
	"reflect"
)

// Rule maps one event type to the action a Will produces for it.
type Rule struct {
	event  reflect.Type
	make   func(Event) Action
	target reflect.Type // transition destination when statically known
}

// On declares that events of type E produce the zero value of action A,
// commonly On[SomeEvent, TransitionTo[SomeState]].
func On[E any, A Action]() Rule {
	r := Rule{
		event: typeFor[E](),
		make: func(Event) Action {
			var a A
			return a
		},
	}
	var proto A
	if t, ok := any(proto).(targeted); ok {
		r.target = t.transitionTarget()
	}
	return r
}

// OnFunc declares that events of type E produce an action constructed
// from the event value, letting action parameters flow from the event.
func OnFunc[E any](fn func(e E) Action) Rule {
	return Rule{
		event: typeFor[E](),
		make: func(event Event) Action {
			return fn(event.(E))
		},
	}
}

// Fallback produces the action for events no rule matches.
type Fallback struct {
	make func(Event) Action
}

// ByDefault is the fallback producing the zero value of action A for
// every unmapped event type, commonly ByDefault[Nothing].
func ByDefault[A Action]() Fallback {
	return Fallback{make: func(Event) Action {
		var a A
		return a
	}}
}

// Will composes a fallback with per-event rules into a single handler: an
// incoming event of a mapped type produces that rule's action, anything
// else produces the fallback's. Each event type may appear in at most one
// rule; duplicates are rejected when the machine is built.
//
// States adopt a Will by embedding it by value:
//
//	type Closed struct{ statemux.Will }
//
//	func NewClosed() *Closed {
//		return &Closed{Will: statemux.NewWill(
//			statemux.ByDefault[statemux.Nothing](),
//			statemux.On[Lock, statemux.TransitionTo[Locked]](),
//		)}
//	}
type Will struct {
	fallback func(Event) Action
	rules    map[reflect.Type]Rule
	err      error // first declaration error, surfaced by Validate
}

// NewWill builds a Will from a fallback and its per-event rules.
func NewWill(def Fallback, rules ...Rule) Will {
	w := Will{
		fallback: def.make,
		rules:    make(map[reflect.Type]Rule, len(rules)),
	}
	for _, r := range rules {
		if _, dup := w.rules[r.event]; dup {
			if w.err == nil {
				w.err = fmt.Errorf("duplicate mapping for event type %s", r.event)
			}
			continue
		}
		w.rules[r.event] = r
	}
	return w
}

// Handle routes the event through the declared rules.
func (w Will) Handle(event Event) Action {
	if r, ok := w.rules[reflect.TypeOf(event)]; ok {
		return r.make(event)
	}
	if w.fallback != nil {
		return w.fallback(event)
	}
	return Nothing{}
}

func (w Will) plan() *Will { return &w }

// validate checks the declared rules against the machine's state set.
func (w *Will) validate(declared func(reflect.Type) bool) error {
	if w.err != nil {
		return w.err
	}
	if w.fallback == nil {
		return fmt.Errorf("no default action declared")
	}
	for _, r := range w.rules {
		if r.target != nil && !declared(r.target) {
			return fmt.Errorf("event type %s transitions to undeclared state type %s", r.event, r.target)
		}
	}
	return nil
}

// planned is satisfied by states that embed a Will, giving Validate
// access to their declared rules.
type planned interface {
	plan() *Will
}

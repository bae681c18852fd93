package statemux

import "reflect"

// StateSlot is one owned entry in a machine's state table. Build one with
// State or Zero. The constructor runs once per declared type and captures
// everything the machine later needs at a given position: the typed
// pointer, the pre-resolved Handler and entry method values, and a typed
// clone closure. Indexing the slot table with the current position is the
// whole runtime selection step; no type inspection happens on the
// dispatch path.
type StateSlot struct {
	key     reflect.Type
	name    string
	ref     any         // *S
	handler Handler     // nil when the state type has no Handle method
	enter   func(Event) // nil when the state type has no entry operation
	plan    *Will       // non-nil when behavior is declared through a Will
	clone   func() StateSlot
}

// State declares a state with an explicit value. The value behind the
// pointer is copied when a machine is built, so each machine owns its
// states exclusively.
func State[S any](state *S) StateSlot {
	key := reflect.TypeOf(state).Elem()
	name := key.Name()
	if name == "" {
		name = key.String()
	}
	s := StateSlot{
		key:  key,
		name: name,
		ref:  state,
	}
	if h, ok := any(state).(Handler); ok {
		s.handler = h
	}
	if en, ok := any(state).(Enterer); ok {
		s.enter = en.OnEnter
	}
	if p, ok := any(state).(planned); ok {
		s.plan = p.plan()
	}
	s.clone = func() StateSlot {
		copied := *state
		return State(&copied)
	}
	return s
}

// Zero declares a default-constructed state of type S.
func Zero[S any]() StateSlot {
	return State(new(S))
}

// typeFor returns the reflect.Type of S without needing a value of it.
func typeFor[S any]() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

package statemux

import "reflect"

// Event is any value delivered to the machine. Events are treated as
// immutable: handlers and entry operations receive them and must not
// modify them. Which handler code runs for an event is decided by the
// event's concrete type.
type Event = any

// eventName names an event's dynamic type for logs.
func eventName(event Event) string {
	if event == nil {
		return "<nil>"
	}
	return reflect.TypeOf(event).String()
}

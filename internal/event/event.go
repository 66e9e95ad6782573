// Package event is a synchronous publish/subscribe hub for arena events.
package event

import "reflect"

// Type names an event.
type Type string

// Event is one notification. Data holds the payload struct for Type.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher fans events out to subscribers in subscription order. It is not
// safe for concurrent use.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Unsubscribe removes the first registration of l for t. Listeners are matched
// by ==, so register pointers; a listener whose dynamic type is not comparable
// can never be removed and is left in place.
func (d *Dispatcher) Unsubscribe(t Type, l Listener) {
	lt := reflect.TypeOf(l)
	if lt == nil || !lt.Comparable() {
		return
	}
	ls := d.listeners[t]
	for i, x := range ls {
		if reflect.TypeOf(x) == lt && x == l {
			d.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every listener subscribed to e.Type. Listeners added
// during delivery see the next event, not this one.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}

// Count returns the number of listeners for t.
func (d *Dispatcher) Count(t Type) int { return len(d.listeners[t]) }

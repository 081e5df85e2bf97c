package sim

// VTimeInHours defines the time in the simulated space in the unit of hour.
// Hour zero is midnight at the start of the first simulated day.
type VTimeInHours float64

// An Event is something going to happen in the future.
type Event interface {
	// Time returns the time that the event should happen.
	Time() VTimeInHours

	// Handler returns the handler that should handle the event.
	Handler() Handler
}

// EventBase provides the basic fields and getters for other events.
type EventBase struct {
	time    VTimeInHours
	handler Handler
}

// NewEventBase creates a new EventBase.
func NewEventBase(t VTimeInHours, handler Handler) *EventBase {
	e := new(EventBase)
	e.time = t
	e.handler = handler
	return e
}

// Time returns the time that the event is going to happen.
func (e EventBase) Time() VTimeInHours {
	return e.time
}

// Handler returns the handler to handle the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// A Handler defines a domain for the events.
//
// One event is always constrained to one Handler, which means the event can
// only be scheduled by the handler that will later process it. The only
// exception is the kick-starting of the simulation, where the arrival
// generator schedules the initial events for other handlers.
type Handler interface {
	Handle(e Event) error
}

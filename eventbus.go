package bento

import "reflect"

// MaxEventTypes is the maximum number of distinct event types one EventBus
// can carry.
const MaxEventTypes = 256

// EventBus delivers typed simulation events to subscribers without coupling
// the publishing system to the handling ones. Handlers run synchronously on
// the publisher's goroutine, in subscription order.
//
// Event type ids are assigned on first Subscribe and index a preallocated
// handler table, so Publish itself never allocates.
type EventBus struct {
	types    map[reflect.Type]uint8
	handlers [MaxEventTypes][]any
}

// Subscribe registers handler to be called for every published event of type
// T. A handler cannot be unregistered; buses are expected to live as long as
// the systems wired through them.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish delivers event to every handler subscribed for type T, in the
// order they subscribed. Publishing a type nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	if id, ok := bus.types[reflect.TypeFor[T]()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// eventTypeID retrieves or assigns the id for an event type.
func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.types == nil {
		bus.types = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.types[t]; ok {
		return id
	}
	if len(bus.types) >= MaxEventTypes {
		panic("bento: too many event types")
	}
	id := uint8(len(bus.types))
	bus.types[t] = id
	return id
}

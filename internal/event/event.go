// internal/event/event.go
package event

// EventType names a kind of gameplay event.
type EventType string

// Event is one notification. Data carries a typed payload from types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. Funcs are not comparable,
// so a ListenerFunc cannot be unsubscribed.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers synchronously, in subscription
// order, on the caller's goroutine.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for several event types at once.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes listener from one event type.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// UnsubscribeAll removes listener from every event type it joined.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for t := range d.listeners {
		d.Unsubscribe(t, listener)
	}
}

// Dispatch delivers event to every subscriber of its type.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Count returns how many listeners are subscribed to eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}

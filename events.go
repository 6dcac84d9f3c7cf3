package lazy

// Observer receives attribute lifecycle events. Events are delivered
// synchronously on the reading goroutine.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(EventData)

// On calls f(eventData).
func (f ObserverFunc) On(eventData EventData) {
	f(eventData)
}

// Event represents an attribute event type.
type Event int

const (
	// EventHit is emitted when a read finds the value in the instance dict.
	EventHit Event = iota
	// EventMiss is emitted after a read ran the producer and stored its value.
	EventMiss
	// EventInvalidate is emitted when invalidation removed a stored value.
	EventInvalidate
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventInvalidate:
		return "invalidate"
	}
	return "unknown"
}

// EventData carries the details of an attribute event.
type EventData struct {
	Event Event
	// Class is the instance's runtime class name.
	Class string
	// Name is the resolved attribute name.
	Name string
	Kind string
}

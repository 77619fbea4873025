package events

// EventPublisher receives store change notifications.
// Publish must not block the caller.
type EventPublisher interface {
	Publish(event Event)
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)

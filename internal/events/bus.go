package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuffer is the channel capacity used when Subscribe is given zero
const DefaultBuffer = 16

// Bus is an in-process fan-out of events to any number of subscribers.
// A subscriber whose buffer is full misses the event; every event means
// "re-read the snapshot", so a dropped one is covered by the next.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	nextID      int
	sequence    atomic.Int64
	closed      bool
	metrics     *Metrics
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]chan Event), metrics: NewMetrics()}
}

// Subscribe registers a new listener. The returned cancel func unregisters
// it and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Publish stamps the event with a sequence id and timestamp (when unset)
// and delivers it to every subscriber without blocking.
func (b *Bus) Publish(event Event) {
	event.SequenceID = b.sequence.Add(1)
	b.metrics.EventsPublished.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subscribers {
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			slog.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
}

// Subscribers returns the number of active subscriptions
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Stats returns the bus counters
func (b *Bus) Stats() MetricsSnapshot {
	return MetricsSnapshot{
		EventsPublished: b.metrics.EventsPublished.Load(),
		EventsDelivered: b.metrics.EventsDelivered.Load(),
		EventsDropped:   b.metrics.EventsDropped.Load(),
		Subscribers:     b.Subscribers(),
		Uptime:          time.Since(b.metrics.StartTime),
	}
}

// Close unregisters and closes every subscriber channel
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	b.closed = true
	return nil
}

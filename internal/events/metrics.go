package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	EventsPublished atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	StartTime       time.Time
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	EventsPublished int64
	EventsDelivered int64
	EventsDropped   int64
	Subscribers     int
	Uptime          time.Duration
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// LogAttrs returns the snapshot as slog key/value pairs
func (s MetricsSnapshot) LogAttrs() []any {
	return []any{
		"events_published", s.EventsPublished,
		"events_delivered", s.EventsDelivered,
		"events_dropped", s.EventsDropped,
		"subscribers", s.Subscribers,
		"uptime", s.Uptime.Round(time.Millisecond),
	}
}

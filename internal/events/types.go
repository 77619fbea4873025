package events

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardsChanged EventType = "boards_changed"
	EventDragChanged   EventType = "drag_changed"
)

// Event represents a store change notification
type Event struct {
	Type       EventType
	BoardID    types.BoardID // Which board was modified (empty when the whole list changed)
	Timestamp  time.Time     // When the event occurred
	SequenceID int64         // Monotonically increasing sequence number for ordering
}

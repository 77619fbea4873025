package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	a, cancelA := bus.Subscribe(1)
	defer cancelA()
	b, cancelB := bus.Subscribe(1)
	defer cancelB()

	bus.Publish(Event{Type: EventBoardsChanged, BoardID: "b1"})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventBoardsChanged, ev.Type)
			assert.Equal(t, "b1", ev.BoardID.String())
			assert.False(t, ev.Timestamp.IsZero())
		default:
			t.Fatal("expected an event to be delivered")
		}
	}
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(4)
	defer cancel()

	bus.Publish(Event{Type: EventBoardsChanged})
	bus.Publish(Event{Type: EventDragChanged})

	first := <-ch
	second := <-ch
	assert.Less(t, first.SequenceID, second.SequenceID)
}

func TestBus_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(Event{Type: EventBoardsChanged})
	bus.Publish(Event{Type: EventBoardsChanged}) // dropped

	assert.Len(t, ch, 1)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(0)
	require.Equal(t, 1, bus.Subscribers())

	cancel()
	cancel() // second call is a no-op

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.Subscribers())
}

func TestBus_CloseClosesSubscribers(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(0)

	require.NoError(t, bus.Close())
	_, open := <-ch
	assert.False(t, open)

	cancel()
	bus.Publish(Event{Type: EventBoardsChanged})

	late, _ := bus.Subscribe(0)
	_, open = <-late
	assert.False(t, open)
}

func TestBus_Stats(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(Event{Type: EventBoardsChanged})
	bus.Publish(Event{Type: EventDragChanged}) // dropped

	stats := bus.Stats()
	assert.EqualValues(t, 2, stats.EventsPublished)
	assert.EqualValues(t, 1, stats.EventsDelivered)
	assert.EqualValues(t, 1, stats.EventsDropped)
	assert.Equal(t, 1, stats.Subscribers)
	assert.Contains(t, stats.LogAttrs(), "events_dropped")
}

package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/events"
)

// StoreChangedMsg is sent when the store publishes a change
type StoreChangedMsg struct {
	Event events.Event
}

// waitForEvent returns a command that blocks for the next store event.
// Returns nil if there is no subscription.
func (m Model) waitForEvent() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	ctx := m.Ctx

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				// bus closed, shutting down
				return nil
			}
			return StoreChangedMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

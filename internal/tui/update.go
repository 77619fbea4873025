package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled, initiate graceful shutdown
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case StoreChangedMsg:
		m.handleStoreChanged(msg.Event)
		return m, m.waitForEvent()

	case tea.WindowSizeMsg:
		m.UIState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// open forms need non-key messages too (cursor blink, field moves)
	switch m.UIState.Mode() {
	case state.InputMode:
		cmd := m.InputState.Update(msg)
		if m.InputState.Completed() {
			return m.submitInput()
		}
		return m, cmd
	case state.ConfirmMode:
		return m, m.ConfirmState.Update(msg)
	}
	return m, nil
}

// handleKey dispatches key messages to the appropriate mode handler.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	switch m.UIState.Mode() {
	case state.InputMode:
		return m.handleInputMode(msg)
	case state.ConfirmMode:
		return m.handleConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleStoreChanged keeps the cursor valid after any change to the store,
// including ones made outside this model.
func (m *Model) handleStoreChanged(e events.Event) {
	slog.Debug("store changed", "type", e.Type, "board", e.BoardID, "seq", e.SequenceID)

	if m.BoardID.IsZero() {
		if boards := m.Store.Boards(); len(boards) > 0 {
			m.BoardID = boards[0].ID
		}
	}
	m.clampSelection()
}

// checkPersist surfaces a failed write-through. The change stays on screen
// since the store keeps it in memory.
func (m Model) checkPersist() {
	if err := m.Store.PersistErr(); err != nil {
		m.NotificationState.Add(state.LevelError, "Not saved: "+err.Error())
	}
}

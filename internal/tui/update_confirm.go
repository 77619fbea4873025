package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleConfirmMode deletes on y, backs out on n or esc, and on enter acts
// on whichever button is selected. Other keys go to the form, which moves
// between the buttons.
func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.applyConfirmed()
	case "n", "N", "esc":
	case "enter":
		if m.ConfirmState.Confirmed() {
			m.applyConfirmed()
		}
	default:
		return m, m.ConfirmState.Update(msg)
	}

	m.ConfirmState.Clear()
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}

func (m *Model) applyConfirmed() {
	target := m.ConfirmState.Target
	s := m.Store

	switch m.ConfirmState.Action {
	case state.DeleteCard:
		s.DeleteCard(target.BoardID, target.ColumnID, target.CardID)
	case state.DeleteColumn:
		s.DeleteColumn(target.BoardID, target.ColumnID)
	case state.DeleteBoard:
		s.DeleteBoard(target.BoardID)
		// show a neighbouring board rather than "not found"
		if target.BoardID == m.BoardID {
			m.BoardID = ""
			if boards := s.Boards(); len(boards) > 0 {
				m.BoardID = boards[0].ID
			}
			m.UIState.ResetSelection()
		}
	}

	m.checkPersist()
	m.clampSelection()
}

package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleInputMode feeds keys to the title form until it is submitted or
// quit. Enter is taken here so a blank title can keep the form open.
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.submitInput()
	}

	cmd := m.InputState.Update(msg)
	if m.InputState.Aborted() {
		m.closeInput()
		return m, nil
	}
	return m, cmd
}

func (m Model) closeInput() {
	m.InputState.Clear()
	m.UIState.SetMode(state.NormalMode)
}

// submitInput applies the prompt's title. Blank titles keep the prompt open.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	if m.InputState.IsEmpty() {
		m.NotificationState.Clear()
		m.NotificationState.Add(state.LevelWarning, "Title cannot be empty")
		return m, nil
	}

	title := m.InputState.TrimmedValue()
	target := m.InputState.Target
	s := m.Store

	switch m.InputState.Action {
	case state.AddCard:
		if _, ok := s.AddCardToColumn(target.BoardID, target.ColumnID, title); ok {
			if board, ok := s.GetBoardByID(target.BoardID); ok {
				if col, ok := board.FindColumn(target.ColumnID); ok {
					m.UIState.SetSelectedCard(len(col.Cards) - 1)
				}
			}
		}
	case state.RenameCard:
		s.UpdateCardTitle(target.BoardID, target.ColumnID, target.CardID, title)
	case state.AddColumn:
		if _, ok := s.AddColumnToBoard(target.BoardID, title); ok {
			if board, ok := s.GetBoardByID(target.BoardID); ok {
				m.UIState.SetSelectedColumn(len(board.Columns) - 1)
				m.UIState.SetSelectedCard(0)
			}
		}
	case state.RenameColumn:
		s.UpdateColumnTitle(target.BoardID, target.ColumnID, title)
	case state.AddBoard:
		if board, ok := s.AddBoard(title); ok {
			m.BoardID = board.ID
			m.UIState.ResetSelection()
		}
	case state.RenameBoard:
		s.UpdateBoardTitle(target.BoardID, title)
	}

	m.checkPersist()
	m.clampSelection()
	m.closeInput()
	return m, nil
}

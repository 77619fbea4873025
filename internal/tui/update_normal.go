package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m.handleQuit()
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevCard, "up":
		return m.handleNavigateCard(-1)
	case km.NextCard, "down":
		return m.handleNavigateCard(1)
	case km.NextBoard:
		return m.handleSwitchBoard(1)
	case km.PrevBoard:
		return m.handleSwitchBoard(-1)
	case km.PickUpCard:
		if m.Store.DraggedCard() != nil {
			return m.handleDrop()
		}
		return m.handlePickUp()
	case km.DropCard:
		return m.handleDrop()
	case km.CancelDrag:
		return m.handleCancelDrag()
	case km.AddCard:
		return m.handleAddCard()
	case km.RenameCard:
		return m.handleRenameCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()
	case km.CreateBoard:
		return m.handleCreateBoard()
	case km.RenameBoard:
		return m.handleRenameBoard()
	case km.DeleteBoard:
		return m.handleDeleteBoard()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	// the drag reference is transient, don't leave it behind
	if m.Store.DraggedCard() != nil {
		m.Store.SetDraggedCard(nil)
	}
	return m, tea.Quit
}

// ============================================================================
// Navigation
// ============================================================================

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok || len(board.Columns) == 0 {
		return m, nil
	}
	next := m.UIState.SelectedColumn() + delta
	if next < 0 || next >= len(board.Columns) {
		return m, nil
	}
	m.UIState.SetSelectedColumn(next)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateCard(delta int) (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, ok := m.selectedColumn(board)
	if !ok || len(col.Cards) == 0 {
		return m, nil
	}
	next := m.UIState.SelectedCard() + delta
	if next < 0 || next >= len(col.Cards) {
		return m, nil
	}
	m.UIState.SetSelectedCard(next)
	return m, nil
}

// handleSwitchBoard cycles through boards. A board that was deleted under
// the cursor counts as sitting before the first one.
func (m Model) handleSwitchBoard(delta int) (tea.Model, tea.Cmd) {
	boards := m.Store.Boards()
	if len(boards) == 0 {
		return m, nil
	}

	i := m.boardIndex(boards)
	switch {
	case i < 0:
		i = 0
	default:
		i = (i + delta + len(boards)) % len(boards)
	}

	// a drag can't cross boards
	if m.Store.DraggedCard() != nil {
		m.Store.SetDraggedCard(nil)
	}
	m.BoardID = boards[i].ID
	m.UIState.ResetSelection()
	return m, nil
}

// ============================================================================
// Drag and drop
// ============================================================================

func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, card, ok := m.selectedCard(board)
	if !ok {
		return m, nil
	}
	m.Store.SetDraggedCard(&models.DraggedCard{CardID: card.ID, FromColumnID: col.ID})
	return m, nil
}

func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	if m.Store.DraggedCard() == nil {
		return m, nil
	}
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	target, ok := m.selectedColumn(board)
	if !ok {
		return m, nil
	}

	if !m.Store.MoveCardToColumn(board.ID, target.ID) {
		// the card or its column went away while it was held
		m.Store.SetDraggedCard(nil)
		m.NotificationState.Add(state.LevelWarning, "Card is no longer there")
		return m, nil
	}
	m.checkPersist()

	// follow the card to the bottom of its new column
	if moved, ok := m.Store.GetBoardByID(board.ID); ok {
		if col, ok := moved.FindColumn(target.ID); ok {
			m.UIState.SetSelectedCard(len(col.Cards) - 1)
		}
	}
	m.clampSelection()
	return m, nil
}

func (m Model) handleCancelDrag() (tea.Model, tea.Cmd) {
	if m.Store.DraggedCard() != nil {
		m.Store.SetDraggedCard(nil)
	}
	return m, nil
}

// ============================================================================
// Dialogs
// ============================================================================

func (m Model) beginInput(action state.InputAction, target state.Target, prompt, initial string) (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.InputMode)
	return m, m.InputState.Begin(action, target, prompt, initial)
}

func (m Model) beginConfirm(action state.ConfirmAction, target state.Target, message string) (tea.Model, tea.Cmd) {
	cmd := m.ConfirmState.Set(action, message, target)
	m.UIState.SetMode(state.ConfirmMode)
	return m, cmd
}

func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, ok := m.selectedColumn(board)
	if !ok {
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Create a column first (%s)", m.Config.KeyMappings.CreateColumn))
		return m, nil
	}
	return m.beginInput(state.AddCard,
		state.Target{BoardID: board.ID, ColumnID: col.ID},
		fmt.Sprintf("New card in '%s':", col.Title), "")
}

func (m Model) handleRenameCard() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, card, ok := m.selectedCard(board)
	if !ok {
		return m, nil
	}
	return m.beginInput(state.RenameCard,
		state.Target{BoardID: board.ID, ColumnID: col.ID, CardID: card.ID},
		"Rename card:", card.Title)
}

func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, card, ok := m.selectedCard(board)
	if !ok {
		return m, nil
	}
	return m.beginConfirm(state.DeleteCard,
		state.Target{BoardID: board.ID, ColumnID: col.ID, CardID: card.ID},
		fmt.Sprintf("Delete card '%s'?", card.Title))
}

func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	return m.beginInput(state.AddColumn, state.Target{BoardID: board.ID},
		fmt.Sprintf("New column in '%s':", board.Title), "")
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, ok := m.selectedColumn(board)
	if !ok {
		return m, nil
	}
	return m.beginInput(state.RenameColumn,
		state.Target{BoardID: board.ID, ColumnID: col.ID},
		"Rename column:", col.Title)
}

func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	col, ok := m.selectedColumn(board)
	if !ok {
		return m, nil
	}
	message := fmt.Sprintf("Delete column '%s'?", col.Title)
	if n := len(col.Cards); n > 0 {
		message = fmt.Sprintf("Delete column '%s' and its %d cards?", col.Title, n)
	}
	return m.beginConfirm(state.DeleteColumn,
		state.Target{BoardID: board.ID, ColumnID: col.ID}, message)
}

func (m Model) handleCreateBoard() (tea.Model, tea.Cmd) {
	return m.beginInput(state.AddBoard, state.Target{}, "New board:", "")
}

func (m Model) handleRenameBoard() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	return m.beginInput(state.RenameBoard, state.Target{BoardID: board.ID}, "Rename board:", board.Title)
}

func (m Model) handleDeleteBoard() (tea.Model, tea.Cmd) {
	board, ok := m.currentBoard()
	if !ok {
		return m, nil
	}
	return m.beginConfirm(state.DeleteBoard, state.Target{BoardID: board.ID},
		fmt.Sprintf("Delete board '%s' with %d columns and %d cards?", board.Title, len(board.Columns), board.CardCount()))
}

package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// minColumnWidth keeps card titles legible on narrow terminals
const minColumnWidth = 24

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	if bg := m.Config.ColorScheme.Background; bg != "" {
		view.BackgroundColor = lipgloss.Color(bg)
	}

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderBase()

	var overlay *lipgloss.Layer
	switch m.UIState.Mode() {
	case state.InputMode:
		overlay = m.renderInputLayer()
	case state.ConfirmMode:
		overlay = m.renderConfirmLayer()
	case state.HelpMode:
		overlay = m.renderHelpLayer()
	}

	view.Content = layers.Compose(base, overlay)
	return view
}

// renderBase draws tabs, the current board and the status bar
func (m Model) renderBase() string {
	boards := m.Store.Boards()
	titles := make([]string, len(boards))
	for i, b := range boards {
		titles[i] = b.Title
	}

	tabs := components.RenderTabs(titles, m.boardIndex(boards), m.UIState.Width(), m.renderNotification())

	var body string
	switch board, ok := m.currentBoard(); {
	case len(boards) == 0:
		body = m.renderMessage(fmt.Sprintf("No boards yet. Press %s to create one.", m.Config.KeyMappings.CreateBoard))
	case !ok:
		body = m.renderMessage("Board not found")
	default:
		body = m.renderBoard(board)
	}

	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.UIState.Width(),
		Left:  m.statusText(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status)
}

// renderMessage centers a single line in the content area
func (m Model) renderMessage(msg string) string {
	return lipgloss.Place(m.UIState.Width(), m.UIState.ContentHeight(),
		lipgloss.Center, lipgloss.Center,
		components.SubtleStyle.Render(msg))
}

// renderBoard lays the columns out side by side, scrolled so the selected
// column is always visible.
func (m Model) renderBoard(board models.Board) string {
	if len(board.Columns) == 0 {
		return m.renderMessage(fmt.Sprintf("No columns yet. Press %s to add one.", m.Config.KeyMappings.CreateColumn))
	}

	width := m.UIState.Width()
	visible := max(min(len(board.Columns), width/minColumnWidth), 1)
	columnWidth := max(width/visible-2, 8)

	selected := m.UIState.SelectedColumn()
	first := 0
	if selected >= visible {
		first = selected - visible + 1
	}
	last := min(first+visible, len(board.Columns))

	var dragging models.DraggedCard
	if ref := m.Store.DraggedCard(); ref != nil {
		dragging = *ref
	}

	rendered := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		isSelected := i == selected
		selectedCard := -1
		if isSelected {
			selectedCard = m.UIState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       board.Columns[i],
			Width:        columnWidth,
			Height:       m.UIState.ContentHeight(),
			Selected:     isSelected,
			SelectedCard: selectedCard,
			Dragging:     dragging.CardID,
			DropTarget:   isSelected && !dragging.CardID.IsZero(),
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// statusText explains the drag in progress, if any
func (m Model) statusText() string {
	ref := m.Store.DraggedCard()
	if ref == nil {
		return ""
	}
	km := m.Config.KeyMappings
	title := "card"
	if board, ok := m.currentBoard(); ok {
		if col, ok := board.FindColumn(ref.FromColumnID); ok {
			if card, ok := col.FindCard(ref.CardID); ok {
				title = fmt.Sprintf("'%s'", card.Title)
			}
		}
	}
	return fmt.Sprintf("Moving %s: %s to drop, %s to cancel", title, km.DropCard, km.CancelDrag)
}

// renderNotification renders the latest notification as a banner
func (m Model) renderNotification() string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	switch n.Level {
	case state.LevelError:
		return components.ErrorBannerStyle.Render(n.Message)
	case state.LevelWarning:
		return components.WarningBannerStyle.Render(n.Message)
	default:
		return components.InfoBannerStyle.Render(n.Message)
	}
}

// renderInputLayer renders the title prompt as a centered dialog
func (m Model) renderInputLayer() *lipgloss.Layer {
	style := components.CreateInputBoxStyle
	switch m.InputState.Action {
	case state.RenameCard, state.RenameColumn, state.RenameBoard:
		style = components.EditInputBoxStyle
	}

	content := m.InputState.Prompt + "\n\n" + m.InputState.View()
	if n, ok := m.NotificationState.Latest(); ok {
		content += "\n\n" + components.WarningBannerStyle.Render(n.Message)
	}
	box := style.Width(50).Render(content + "\n\nenter: save  esc: cancel")

	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

// renderConfirmLayer renders the delete confirmation dialog
func (m Model) renderConfirmLayer() *lipgloss.Layer {
	box := components.DeleteConfirmBoxStyle.
		Width(50).
		Render(m.ConfirmState.Message + "\n\n" + m.ConfirmState.View() + "\n\ny: delete  n: keep  enter: choose")

	return layers.CreateCenteredLayer(box, m.UIState.Width(), m.UIState.Height())
}

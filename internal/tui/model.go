// Package tui is the interactive board view. It reads boards from the store
// on every render and only keeps cursor and dialog state of its own, so
// whatever the store holds is what the screen shows.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/store"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Store  *store.Store
	Config *config.Config

	// BoardID is the board being shown. It may name a board that has since
	// been deleted; the view then says so.
	BoardID types.BoardID

	UIState           *state.UIState
	InputState        *state.InputState
	ConfirmState      *state.ConfirmState
	NotificationState *state.NotificationState

	// EventChan delivers store change notifications
	EventChan   <-chan events.Event
	unsubscribe func()
}

// InitialModel creates the TUI model over a, showing the first board
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = a.Config
	}
	if ctx == nil {
		ctx = context.Background()
	}
	components.InitStyles(cfg.ColorScheme)
	theme := huhforms.Theme(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		Store:             a.Store,
		Config:            cfg,
		UIState:           state.NewUIState(),
		InputState:        state.NewInputState(theme),
		ConfirmState:      state.NewConfirmState(theme),
		NotificationState: state.NewNotificationState(),
	}
	if a.Events != nil {
		m.EventChan, m.unsubscribe = a.Events.Subscribe(events.DefaultBuffer)
	}
	if boards := a.Store.Boards(); len(boards) > 0 {
		m.BoardID = boards[0].ID
	}
	return m
}

// Init starts listening for store events
func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// Close stops the event subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// currentBoard returns the board being shown, if it still exists
func (m Model) currentBoard() (models.Board, bool) {
	if m.BoardID.IsZero() {
		return models.Board{}, false
	}
	return m.Store.GetBoardByID(m.BoardID)
}

// boardIndex returns the position of the current board in the board list
func (m Model) boardIndex(boards []models.Board) int {
	for i, b := range boards {
		if b.ID == m.BoardID {
			return i
		}
	}
	return -1
}

// selectedColumn returns the column under the cursor
func (m Model) selectedColumn(board models.Board) (models.Column, bool) {
	i := m.UIState.SelectedColumn()
	if i < 0 || i >= len(board.Columns) {
		return models.Column{}, false
	}
	return board.Columns[i], true
}

// selectedCard returns the card under the cursor with its column
func (m Model) selectedCard(board models.Board) (models.Column, models.Card, bool) {
	col, ok := m.selectedColumn(board)
	if !ok {
		return models.Column{}, models.Card{}, false
	}
	i := m.UIState.SelectedCard()
	if i < 0 || i >= len(col.Cards) {
		return col, models.Card{}, false
	}
	return col, col.Cards[i], true
}

// clampSelection keeps the cursor inside the current board
func (m Model) clampSelection() {
	board, ok := m.currentBoard()
	if !ok {
		m.UIState.ResetSelection()
		return
	}
	counts := make([]int, len(board.Columns))
	for i, col := range board.Columns {
		counts[i] = len(col.Cards)
	}
	m.UIState.Clamp(counts)
}

package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode closes the help screen on any key.
func (m Model) handleHelpMode(_ tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UIState.SetMode(state.NormalMode)
	return m, nil
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UIState.Width(), m.UIState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`KANBAN - Keyboard Shortcuts

CARDS
  %-9s Add card to current column
  %-9s Rename selected card
  %-9s Delete selected card
  %-9s Pick up selected card
  %-9s Drop card on current column
  %-9s Cancel drag

COLUMNS
  %-9s Create column
  %-9s Rename current column
  %-9s Delete current column

BOARDS
  %-9s Create board
  %-9s Rename board
  %-9s Delete board
  %-9s Next board
  %-9s Previous board

NAVIGATION
  %-9s Previous column
  %-9s Next column
  %-9s Previous card
  %-9s Next card

OTHER
  %-9s Show this help
  %-9s Quit

Press any key to close`,
		km.AddCard,
		km.RenameCard,
		km.DeleteCard,
		km.PickUpCard,
		km.DropCard,
		km.CancelDrag,
		km.CreateColumn,
		km.RenameColumn,
		km.DeleteColumn,
		km.CreateBoard,
		km.RenameBoard,
		km.DeleteBoard,
		km.NextBoard,
		km.PrevBoard,
		km.PrevColumn,
		km.NextColumn,
		km.PrevCard,
		km.NextCard,
		km.ShowHelp,
		km.Quit,
	)
}

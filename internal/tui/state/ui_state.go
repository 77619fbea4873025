package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode, also used while dragging
	InputMode               // Typing a title into the prompt
	ConfirmMode             // Confirming a deletion
	HelpMode                // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/card selection), terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(index, 0)
}

func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(index, 0)
}

func (s *UIState) Width() int {
	return s.width
}

func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight is the height left for columns after the tab bar (3 lines)
// and the status bar (1 line).
func (s *UIState) ContentHeight() int {
	return max(s.height-4, 0)
}

func (s *UIState) Mode() Mode {
	return s.mode
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Clamp keeps the selection inside a board with the given shape.
// cardCounts has one entry per column.
func (s *UIState) Clamp(cardCounts []int) {
	if len(cardCounts) == 0 {
		s.selectedColumn = 0
		s.selectedCard = 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, len(cardCounts)-1)
	n := cardCounts[s.selectedColumn]
	if n == 0 {
		s.selectedCard = 0
		return
	}
	s.selectedCard = min(s.selectedCard, n-1)
}

// ResetSelection moves the cursor to the first card of the first column
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
}

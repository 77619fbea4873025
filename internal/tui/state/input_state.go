package state

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

// InputAction says what a submitted title is for
type InputAction int

const (
	AddCard InputAction = iota
	RenameCard
	AddColumn
	RenameColumn
	AddBoard
	RenameBoard
)

// InputState manages the single-line title prompt used for creating and
// renaming boards, columns and cards.
type InputState struct {
	Action InputAction
	Target Target

	// Prompt is the text displayed to the user (e.g., "New column title:")
	Prompt string

	theme huh.Theme
	form  *huh.Form
	title string
}

// NewInputState creates an empty InputState. theme may be nil.
func NewInputState(theme huh.Theme) *InputState {
	return &InputState{theme: theme}
}

// Begin builds a fresh title form for action on target, pre-filled with
// initial, and focuses it.
func (s *InputState) Begin(action InputAction, target Target, prompt, initial string) tea.Cmd {
	s.Action = action
	s.Target = target
	s.Prompt = prompt
	s.title = initial
	s.form = huhforms.TitleForm(&s.title)
	if s.theme != nil {
		s.form = s.form.WithTheme(s.theme)
	}
	return s.form.Init()
}

// Update forwards a message to the form.
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	if s.form == nil {
		return nil
	}
	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}
	return cmd
}

// Aborted reports whether the form was quit
func (s *InputState) Aborted() bool {
	return s.form != nil && s.form.State == huh.StateAborted
}

// Completed reports whether the form was submitted through huh itself
func (s *InputState) Completed() bool {
	return s.form != nil && s.form.State == huh.StateCompleted
}

// Value returns the raw input.
func (s *InputState) Value() string {
	return s.title
}

// TrimmedValue returns the input with surrounding whitespace removed.
func (s *InputState) TrimmedValue() string {
	return strings.TrimSpace(s.title)
}

// IsEmpty returns true if the input is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return s.TrimmedValue() == ""
}

// View renders the form, or nothing when no prompt is open.
func (s *InputState) View() string {
	if s.form == nil {
		return ""
	}
	return s.form.View()
}

// Clear drops the form and forgets the prompt.
func (s *InputState) Clear() {
	s.form = nil
	s.title = ""
	s.Prompt = ""
	s.Target = Target{}
}

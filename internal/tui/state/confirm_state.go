package state

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/types"
)

// Target names the entity a dialog acts on. It is captured by id when the
// dialog opens so a change made meanwhile can't redirect the action.
type Target struct {
	BoardID  types.BoardID
	ColumnID types.ColumnID
	CardID   types.CardID
}

// ConfirmAction says what a confirmed deletion removes
type ConfirmAction int

const (
	DeleteCard ConfirmAction = iota
	DeleteColumn
	DeleteBoard
)

// ConfirmState holds a pending deletion and the yes/no form asking for it
type ConfirmState struct {
	Action  ConfirmAction
	Message string
	Target  Target

	theme     huh.Theme
	form      *huh.Form
	confirmed bool
}

// NewConfirmState creates an empty ConfirmState. theme may be nil.
func NewConfirmState(theme huh.Theme) *ConfirmState {
	return &ConfirmState{theme: theme}
}

// Set records the pending deletion and builds its form with "Yes" selected
func (s *ConfirmState) Set(action ConfirmAction, message string, target Target) tea.Cmd {
	*s = ConfirmState{Action: action, Message: message, Target: target, theme: s.theme, confirmed: true}
	s.form = huhforms.ConfirmForm(&s.confirmed)
	if s.theme != nil {
		s.form = s.form.WithTheme(s.theme)
	}
	return s.form.Init()
}

// Update forwards a message to the form, which toggles the choice.
func (s *ConfirmState) Update(msg tea.Msg) tea.Cmd {
	if s.form == nil {
		return nil
	}
	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}
	return cmd
}

// Confirmed reports the current choice
func (s *ConfirmState) Confirmed() bool {
	return s.confirmed
}

// View renders the yes/no buttons, or nothing when no deletion is pending.
func (s *ConfirmState) View() string {
	if s.form == nil {
		return ""
	}
	return s.form.View()
}

// Clear drops the pending deletion
func (s *ConfirmState) Clear() {
	*s = ConfirmState{theme: s.theme}
}

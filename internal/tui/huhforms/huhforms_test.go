package huhforms

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/config/colors"
)

func send(t *testing.T, form *huh.Form, msgs ...tea.Msg) *huh.Form {
	t.Helper()
	for _, msg := range msgs {
		model, _ := form.Update(msg)
		var ok bool
		form, ok = model.(*huh.Form)
		require.True(t, ok)
	}
	return form
}

func TestTitleForm_BindsValue(t *testing.T) {
	title := "Task"
	form := TitleForm(&title)
	form.Init()

	form = send(t, form,
		tea.KeyPressMsg(tea.Key{Code: '!', Text: "!"}),
		tea.KeyPressMsg(tea.Key{Code: '?', Text: "?"}),
	)
	assert.Equal(t, "Task!?", title)
	assert.Equal(t, huh.StateNormal, form.State)
}

func TestTitleForm_CharLimit(t *testing.T) {
	title := strings.Repeat("x", MaxTitleLength)
	form := TitleForm(&title)
	form.Init()

	send(t, form, tea.KeyPressMsg(tea.Key{Code: 'y', Text: "y"}))
	assert.Len(t, title, MaxTitleLength)
}

func TestKeyMap_EscQuits(t *testing.T) {
	title := ""
	form := TitleForm(&title)
	form.Init()

	form = send(t, form, tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	assert.Equal(t, huh.StateAborted, form.State)
}

func TestConfirmForm_Toggles(t *testing.T) {
	confirm := true
	form := ConfirmForm(&confirm)
	form.Init()

	send(t, form, tea.KeyPressMsg(tea.Key{Code: 'l', Text: "l"}))
	assert.False(t, confirm)
}

func TestTheme_UsesScheme(t *testing.T) {
	title := ""
	form := TitleForm(&title).WithTheme(Theme(*colors.Default()))
	form.Init()
	assert.NotPanics(t, func() { _ = form.View() })
}

package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// setupTestModel returns a sized model over a fresh in-memory app
func setupTestModel(t *testing.T) (Model, *storage.Memory) {
	t.Helper()
	a, mem := testutil.SetupTestApp(t)
	m := InitialModel(context.Background(), a, nil)
	t.Cleanup(m.Close)
	m.UIState.SetSize(120, 40)
	return m, mem
}

// seedBoard creates "Sprint" with To Do (two cards) and Done (empty)
func seedBoard(t *testing.T, m *Model) models.Board {
	t.Helper()
	board := testutil.CreateTestBoard(t, m.Store, "Sprint", "To Do", "Done")
	testutil.CreateTestCard(t, m.Store, board.ID, board.Columns[0].ID, "Task A")
	testutil.CreateTestCard(t, m.Store, board.ID, board.Columns[0].ID, "Task B")
	m.BoardID = board.ID
	board, _ = m.Store.GetBoardByID(board.ID)
	return board
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return msgs
}

func TestInitialModel_SelectsFirstBoard(t *testing.T) {
	a, _ := testutil.SetupTestApp(t)
	first := testutil.CreateTestBoard(t, a.Store, "First")
	testutil.CreateTestBoard(t, a.Store, "Second")

	m := InitialModel(context.Background(), a, nil)
	defer m.Close()

	assert.Equal(t, first.ID, m.BoardID)
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Same(t, a.Config, m.Config)
}

func TestInitialModel_NoBoards(t *testing.T) {
	m, _ := setupTestModel(t)
	assert.True(t, m.BoardID.IsZero())
	_, ok := m.currentBoard()
	assert.False(t, ok)
}

func TestView_LoadingUntilSized(t *testing.T) {
	a, _ := testutil.SetupTestApp(t)
	m := InitialModel(context.Background(), a, nil)
	defer m.Close()

	view := m.View()
	assert.Equal(t, "Loading...", view.Content)
	assert.True(t, view.AltScreen)
}

func TestView_EmptyStore(t *testing.T) {
	m, _ := setupTestModel(t)
	assert.Contains(t, m.View().Content, "No boards yet. Press B to create one.")
}

func TestView_ShowsBoard(t *testing.T) {
	m, _ := setupTestModel(t)
	seedBoard(t, &m)

	content := m.View().Content
	assert.Contains(t, content, "Sprint")
	assert.Contains(t, content, "To Do (2)")
	assert.Contains(t, content, "Done (0)")
	assert.Contains(t, content, "Task A")
	assert.Contains(t, content, "Task B")
	assert.Contains(t, content, "No cards")
}

func TestView_BoardNotFound(t *testing.T) {
	m, _ := setupTestModel(t)
	board := seedBoard(t, &m)
	testutil.CreateTestBoard(t, m.Store, "Other")

	// deleted by another writer, the model still points at it
	m.Store.DeleteBoard(board.ID)

	assert.Contains(t, m.View().Content, "Board not found")
}

func TestView_DragStatus(t *testing.T) {
	m, _ := setupTestModel(t)
	seedBoard(t, &m)

	m = press(t, m, special(tea.KeySpace))
	content := m.View().Content
	assert.Contains(t, content, "Moving 'Task A'")
	assert.NotContains(t, content, "Drop here")

	m = press(t, m, key("l"))
	assert.Contains(t, m.View().Content, "Drop here")
}

func TestView_HelpOverlay(t *testing.T) {
	m, _ := setupTestModel(t)
	m = press(t, m, key("?"))

	require.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard Shortcuts")

	m = press(t, m, key("x"))
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestStoreChangedMsg_ClampsSelection(t *testing.T) {
	m, _ := setupTestModel(t)
	board := seedBoard(t, &m)
	m.UIState.SetSelectedCard(1)

	m.Store.DeleteCard(board.ID, board.Columns[0].ID, board.Columns[0].Cards[1].ID)
	m = press(t, m, StoreChangedMsg{})

	assert.Equal(t, 0, m.UIState.SelectedCard())
}

func TestStoreChangedMsg_PicksUpFirstBoard(t *testing.T) {
	m, _ := setupTestModel(t)
	board := testutil.CreateTestBoard(t, m.Store, "Created elsewhere")

	m = press(t, m, StoreChangedMsg{})
	assert.Equal(t, board.ID, m.BoardID)
}

func TestWaitForEvent_DeliversStoreEvents(t *testing.T) {
	m, _ := setupTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	m.Store.AddBoard("Sprint")

	msg := cmd()
	changed, ok := msg.(StoreChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "boards_changed", string(changed.Event.Type))
}

func TestWaitForEvent_StopsOnCancel(t *testing.T) {
	a, _ := testutil.SetupTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := InitialModel(ctx, a, nil)
	defer m.Close()

	cmd := m.waitForEvent()
	cancel()
	assert.Nil(t, cmd())
}

func TestUpdate_QuitsWhenContextDone(t *testing.T) {
	a, _ := testutil.SetupTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := InitialModel(ctx, a, nil)
	defer m.Close()
	cancel()

	_, cmd := m.Update(key("j"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestCreateColumn(t *testing.T) {
	testApp, mem := testutil.SetupTestApp(t)
	b := testutil.CreateTestBoard(t, testApp.Store, "Sprint 1", "To Do")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "create", "--board", "Sprint 1", "--title", "Done")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Column 'Done' created successfully")
	assert.Contains(t, res.Stdout, "Board: Sprint 1")

	got, _ := testApp.Store.GetBoardByID(b.ID)
	require.Len(t, got.Columns, 2)
	assert.Equal(t, "Done", got.Columns[1].Title)
	assert.Empty(t, got.Columns[1].Cards)
	assert.Equal(t, []string{"To Do", "Done"}, []string{
		testutil.PersistedBoards(t, mem)[0].Columns[0].Title,
		testutil.PersistedBoards(t, mem)[0].Columns[1].Title,
	})
}

func TestCreateColumn_JSONAndQuiet(t *testing.T) {
	testApp, _ := testutil.SetupTestApp(t)
	b := testutil.CreateTestBoard(t, testApp.Store, "Sprint 1")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "create", "--board", b.ID.String(), "--title", "To Do", "--json")
	require.NoError(t, res.Err)
	column := testutil.ParseJSON(t, res.Stdout)["column"].(map[string]any)
	assert.Equal(t, "To Do", column["title"])
	assert.Equal(t, b.ID.String(), column["board_id"])

	res = clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "create", "--board", b.ID.String(), "--title", "Done", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, "id-3\n", res.Stdout)
}

func TestCreateColumn_BoardNotFound(t *testing.T) {
	testApp, _ := testutil.SetupTestApp(t)

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "create", "--board", "ghost", "--title", "To Do", "--json")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
	assert.Equal(t, "BOARD_NOT_FOUND", testutil.ParseJSON(t, res.Stdout)["error"].(map[string]any)["code"])
}

func TestCreateColumn_BlankTitle(t *testing.T) {
	testApp, _ := testutil.SetupTestApp(t)
	b := testutil.CreateTestBoard(t, testApp.Store, "Sprint 1")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "create", "--board", "Sprint 1", "--title", "\t")
	assert.Equal(t, cli.ExitValidation, res.ExitCode())

	got, _ := testApp.Store.GetBoardByID(b.ID)
	assert.Empty(t, got.Columns)
}

func TestRenameColumn(t *testing.T) {
	testApp, _ := testutil.SetupTestApp(t)
	b := testutil.CreateTestBoard(t, testApp.Store, "Sprint 1", "To Do", "Done")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "rename", "to do", "--board", "Sprint 1", "--title", "Backlog")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Column 'To Do' renamed to 'Backlog'")

	got, _ := testApp.Store.GetBoardByID(b.ID)
	assert.Equal(t, "Backlog", got.Columns[0].Title)
	assert.Equal(t, "Done", got.Columns[1].Title)
}

func TestRenameColumn_NotFound(t *testing.T) {
	testApp, _ := testutil.SetupTestApp(t)
	testutil.CreateTestBoard(t, testApp.Store, "Sprint 1", "To Do")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "rename", "Review", "--board", "Sprint 1", "--title", "QA")
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
	assert.Contains(t, res.Stderr, `column "Review" not found`)
}

func TestDeleteColumn_RemovesCards(t *testing.T) {
	testApp, mem := testutil.SetupTestApp(t)
	b := testutil.CreateTestBoard(t, testApp.Store, "Sprint 1", "To Do", "Done")
	testutil.CreateTestCard(t, testApp.Store, b.ID, b.Columns[0].ID, "Task A")
	testutil.CreateTestCard(t, testApp.Store, b.ID, b.Columns[0].ID, "Task B")

	res := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), "delete", b.Columns[0].ID.String(), "--board", "Sprint 1", "--json")
	require.NoError(t, res.Err)
	deleted := testutil.ParseJSON(t, res.Stdout)["deleted"].(map[string]any)
	assert.Equal(t, float64(2), deleted["cards"])

	persisted := testutil.PersistedBoards(t, mem)
	require.Len(t, persisted[0].Columns, 1)
	assert.Equal(t, "Done", persisted[0].Columns[0].Title)
	assert.Zero(t, persisted[0].CardCount())
}

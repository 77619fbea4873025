package models

import "github.com/thenoetrevino/kanban/internal/types"

// Board represents one project/workspace: an ordered set of columns.
// Boards are the top-level organizational unit.
type Board struct {
	ID      types.BoardID `json:"id" yaml:"id"`
	Title   string        `json:"title" yaml:"title"`
	Columns []Column      `json:"columns" yaml:"columns"`
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	columns := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		columns[i] = col.Clone()
	}
	b.Columns = columns
	return b
}

// ColumnIndex returns the position of the column with the given id, or -1
func (b Board) ColumnIndex(id types.ColumnID) int {
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// FindColumn returns the column with the given id
func (b Board) FindColumn(id types.ColumnID) (Column, bool) {
	if i := b.ColumnIndex(id); i >= 0 {
		return b.Columns[i], true
	}
	return Column{}, false
}

// CardCount returns the number of cards across all columns
func (b Board) CardCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}

// CloneBoards deep-copies a board list
func CloneBoards(boards []Board) []Board {
	out := make([]Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

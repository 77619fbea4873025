package models

import "github.com/thenoetrevino/kanban/internal/types"

// DraggedCard references the card currently being moved and the column it
// was picked up from. It is transient and never persisted.
type DraggedCard struct {
	CardID       types.CardID   `json:"cardId"`
	FromColumnID types.ColumnID `json:"fromColumnId"`
}

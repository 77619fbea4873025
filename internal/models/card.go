package models

import "github.com/thenoetrevino/kanban/internal/types"

// Card represents a single task on the kanban board.
// A card is owned by exactly one column at a time.
type Card struct {
	ID      types.CardID `json:"id" yaml:"id"`
	Title   string       `json:"title" yaml:"title"`
	Content string       `json:"content,omitempty" yaml:"content,omitempty"` // reserved, no operation reads or writes it
}

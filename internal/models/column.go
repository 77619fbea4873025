package models

import "github.com/thenoetrevino/kanban/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// Cards are kept in display order; new cards are appended to the end.
type Column struct {
	ID    types.ColumnID `json:"id" yaml:"id"`
	Title string         `json:"title" yaml:"title"`
	Cards []Card         `json:"cards" yaml:"cards"`
}

// Clone returns a copy of the column that shares no memory with c
func (c Column) Clone() Column {
	cards := make([]Card, len(c.Cards))
	copy(cards, c.Cards)
	c.Cards = cards
	return c
}

// CardIndex returns the position of the card with the given id, or -1
func (c Column) CardIndex(id types.CardID) int {
	for i, card := range c.Cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}

// FindCard returns the card with the given id
func (c Column) FindCard(id types.CardID) (Card, bool) {
	if i := c.CardIndex(id); i >= 0 {
		return c.Cards[i], true
	}
	return Card{}, false
}

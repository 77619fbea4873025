package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoards is wrapped by every ValidateBoards failure
var ErrInvalidBoards = errors.New("invalid boards")

// ValidateBoards checks what the store guarantees for data it creates itself:
// ids present and unique within their parent, board titles not blank.
// Snapshots coming from outside (import) must pass before they replace state.
func ValidateBoards(boards []Board) error {
	boardIDs := make(map[string]bool, len(boards))
	for bi, b := range boards {
		if b.ID.IsZero() {
			return fmt.Errorf("%w: board %d has no id", ErrInvalidBoards, bi)
		}
		if boardIDs[b.ID.String()] {
			return fmt.Errorf("%w: duplicate board id %q", ErrInvalidBoards, b.ID)
		}
		boardIDs[b.ID.String()] = true
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("%w: board %q has a blank title", ErrInvalidBoards, b.ID)
		}

		columnIDs := make(map[string]bool, len(b.Columns))
		for ci, col := range b.Columns {
			if col.ID.IsZero() {
				return fmt.Errorf("%w: column %d of board %q has no id", ErrInvalidBoards, ci, b.ID)
			}
			if columnIDs[col.ID.String()] {
				return fmt.Errorf("%w: duplicate column id %q in board %q", ErrInvalidBoards, col.ID, b.ID)
			}
			columnIDs[col.ID.String()] = true

			cardIDs := make(map[string]bool, len(col.Cards))
			for ki, card := range col.Cards {
				if card.ID.IsZero() {
					return fmt.Errorf("%w: card %d of column %q has no id", ErrInvalidBoards, ki, col.ID)
				}
				if cardIDs[card.ID.String()] {
					return fmt.Errorf("%w: duplicate card id %q in column %q", ErrInvalidBoards, card.ID, col.ID)
				}
				cardIDs[card.ID.String()] = true
			}
		}
	}
	return nil
}

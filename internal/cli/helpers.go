package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/store"
)

var (
	// ErrNotFound means a reference matched nothing
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous means a reference matched more than one entity
	ErrAmbiguous = errors.New("ambiguous reference")
)

// match picks the single candidate whose id equals ref, whose id starts with
// ref, or whose title equals ref ignoring case, in that order of preference.
func match[T any](ref string, items []T, id func(T) string, title func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, ErrNotFound
	}

	for _, it := range items {
		if id(it) == ref {
			return it, nil
		}
	}

	for _, pass := range []func(T) bool{
		func(it T) bool { return strings.HasPrefix(id(it), ref) },
		func(it T) bool { return strings.EqualFold(title(it), ref) },
	} {
		var found []T
		for _, it := range items {
			if pass(it) {
				found = append(found, it)
			}
		}
		switch len(found) {
		case 0:
			continue
		case 1:
			return found[0], nil
		default:
			return zero, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguous, ref, len(found))
		}
	}
	return zero, ErrNotFound
}

// ResolveBoard finds a board by id, id prefix or title
func ResolveBoard(s *store.Store, ref string) (models.Board, error) {
	return match(ref, s.Boards(),
		func(b models.Board) string { return b.ID.String() },
		func(b models.Board) string { return b.Title })
}

// ResolveColumn finds a column of board by id, id prefix or title
func ResolveColumn(board models.Board, ref string) (models.Column, error) {
	return match(ref, board.Columns,
		func(c models.Column) string { return c.ID.String() },
		func(c models.Column) string { return c.Title })
}

// ResolveCard finds a card of column by id, id prefix or title
func ResolveCard(column models.Column, ref string) (models.Card, error) {
	return match(ref, column.Cards,
		func(c models.Card) string { return c.ID.String() },
		func(c models.Card) string { return c.Title })
}

// ResolveFailure reports a failed lookup of the given kind ("board",
// "column", "card") with the matching exit code.
func (f *OutputFormatter) ResolveFailure(kind, ref string, err error) error {
	upper := strings.ToUpper(kind)
	if errors.Is(err, ErrAmbiguous) {
		return f.FailWithSuggestion(ExitValidation, "AMBIGUOUS_"+upper,
			fmt.Sprintf("%s reference %q is ambiguous", kind, ref),
			"use the full id")
	}
	return f.Fail(ExitNotFound, upper+"_NOT_FOUND", fmt.Sprintf("%s %q not found", kind, ref))
}

// RequireTitle trims a title and rejects blanks with a validation error
func (f *OutputFormatter) RequireTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", f.Fail(ExitValidation, "INVALID_TITLE", "title must not be empty")
	}
	return title, nil
}

// CheckPersist turns a failed write-through into a general error. The change
// itself is still applied in memory.
func (f *OutputFormatter) CheckPersist(s *store.Store) error {
	if err := s.PersistErr(); err != nil {
		return f.FailWithSuggestion(ExitError, "PERSIST_ERROR",
			fmt.Sprintf("change was not saved: %v", err),
			"check the storage backend and retry")
	}
	return nil
}

// Package store is the single source of truth for all boards. Every read and
// write goes through a Store; each mutation replaces the affected board with a
// new value and writes the full state through to local storage.
//
// Referencing an entity that does not exist is never an error: the operation
// is a silent no-op, so a presentation layer holding a stale id can't corrupt
// anything.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
	"github.com/thenoetrevino/kanban/internal/types"
)

// persistTimeout bounds a single write-through
const persistTimeout = 5 * time.Second

// Store holds the board list and the transient drag reference
type Store struct {
	mu      sync.RWMutex
	boards  []models.Board
	dragged *models.DraggedCard

	storage    storage.Storage
	key        string
	publisher  events.EventPublisher
	newID      types.IDGenerator
	logger     *slog.Logger
	persistErr error
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the storage record name (default storage.DefaultKey)
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithPublisher sends a change notification after every mutation
func WithPublisher(p events.EventPublisher) Option {
	return func(s *Store) { s.publisher = p }
}

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(gen types.IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for write-through failures
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open rehydrates a Store from the record in st. A missing record yields an
// empty store; a record that cannot be decoded is an error.
func Open(ctx context.Context, st storage.Storage, opts ...Option) (*Store, error) {
	s := New(st, opts...)

	data, err := st.Load(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load %q: %w", s.key, err)
	}

	boards, err := storage.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	s.boards = boards
	s.logger.Debug("store rehydrated", "key", s.key, "boards", len(boards))
	return s, nil
}

// New creates an empty Store without reading storage
func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		boards:  []models.Board{},
		storage: st,
		key:     storage.DefaultKey,
		newID:   types.NewID,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Reads
// ============================================================================

// Boards returns a deep copy of the board list in display order
func (s *Store) Boards() []models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneBoards(s.boards)
}

// GetBoardByID returns the board with the matching id
func (s *Store) GetBoardByID(id types.BoardID) (models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Board{}, false
	}
	return s.boards[i].Clone(), true
}

// DraggedCard returns the current drag reference, or nil
func (s *Store) DraggedCard() *models.DraggedCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dragged == nil {
		return nil
	}
	ref := *s.dragged
	return &ref
}

// PersistErr returns the error of the most recent write-through, if any
func (s *Store) PersistErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// ============================================================================
// Boards
// ============================================================================

// AddBoard appends a new empty board. Titles that trim to empty are ignored.
func (s *Store) AddBoard(title string) (models.Board, bool) {
	if strings.TrimSpace(title) == "" {
		return models.Board{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board := models.Board{
		ID:      types.BoardID(s.newID()),
		Title:   title,
		Columns: []models.Column{},
	}
	boards := make([]models.Board, len(s.boards), len(s.boards)+1)
	copy(boards, s.boards)
	s.boards = append(boards, board)
	s.commit(board.ID)

	return board.Clone(), true
}

// UpdateBoard replaces the stored board that has the same id
func (s *Store) UpdateBoard(board models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replace(board.Clone())
}

// UpdateBoardTitle renames a board by replacing it with a retitled copy.
// An unknown id is a no-op.
func (s *Store) UpdateBoardTitle(id types.BoardID, title string) {
	board, ok := s.GetBoardByID(id)
	if !ok {
		return
	}
	board.Title = title
	s.UpdateBoard(board)
}

// DeleteBoard removes a board together with its columns and cards
func (s *Store) DeleteBoard(id types.BoardID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	boards := make([]models.Board, 0, len(s.boards)-1)
	boards = append(boards, s.boards[:i]...)
	boards = append(boards, s.boards[i+1:]...)
	s.boards = boards
	s.commit(id)
}

// Replace swaps the whole board list, e.g. when importing a snapshot.
// The drag reference is cleared since it may point at nothing.
func (s *Store) Replace(boards []models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards = models.CloneBoards(boards)
	s.dragged = nil
	s.commit("")
}

// ============================================================================
// Columns
// ============================================================================

// AddColumnToBoard appends a new empty column to the board
func (s *Store) AddColumnToBoard(boardID types.BoardID, title string) (models.Column, bool) {
	var created models.Column
	ok := s.mutate(boardID, func(b *models.Board) bool {
		created = models.Column{
			ID:    types.ColumnID(s.newID()),
			Title: title,
			Cards: []models.Card{},
		}
		b.Columns = append(b.Columns, created)
		return true
	})
	return created.Clone(), ok
}

// UpdateColumnTitle renames a column
func (s *Store) UpdateColumnTitle(boardID types.BoardID, columnID types.ColumnID, title string) {
	s.mutate(boardID, func(b *models.Board) bool {
		i := b.ColumnIndex(columnID)
		if i < 0 {
			return false
		}
		b.Columns[i].Title = title
		return true
	})
}

// DeleteColumn removes a column and all of its cards
func (s *Store) DeleteColumn(boardID types.BoardID, columnID types.ColumnID) {
	s.mutate(boardID, func(b *models.Board) bool {
		i := b.ColumnIndex(columnID)
		if i < 0 {
			return false
		}
		b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
		return true
	})
}

// ============================================================================
// Cards
// ============================================================================

// AddCardToColumn appends a new card to the column
func (s *Store) AddCardToColumn(boardID types.BoardID, columnID types.ColumnID, title string) (models.Card, bool) {
	var created models.Card
	ok := s.mutate(boardID, func(b *models.Board) bool {
		i := b.ColumnIndex(columnID)
		if i < 0 {
			return false
		}
		created = models.Card{ID: types.CardID(s.newID()), Title: title}
		b.Columns[i].Cards = append(b.Columns[i].Cards, created)
		return true
	})
	return created, ok
}

// UpdateCardTitle renames a card. Empty titles are accepted.
func (s *Store) UpdateCardTitle(boardID types.BoardID, columnID types.ColumnID, cardID types.CardID, title string) {
	s.mutate(boardID, func(b *models.Board) bool {
		ci := b.ColumnIndex(columnID)
		if ci < 0 {
			return false
		}
		ki := b.Columns[ci].CardIndex(cardID)
		if ki < 0 {
			return false
		}
		b.Columns[ci].Cards[ki].Title = title
		return true
	})
}

// DeleteCard removes a card, keeping the order of the others
func (s *Store) DeleteCard(boardID types.BoardID, columnID types.ColumnID, cardID types.CardID) {
	s.mutate(boardID, func(b *models.Board) bool {
		ci := b.ColumnIndex(columnID)
		if ci < 0 {
			return false
		}
		ki := b.Columns[ci].CardIndex(cardID)
		if ki < 0 {
			return false
		}
		cards := b.Columns[ci].Cards
		b.Columns[ci].Cards = append(cards[:ki], cards[ki+1:]...)
		return true
	})
}

// ============================================================================
// Drag and drop
// ============================================================================

// SetDraggedCard records (or, with nil, clears) the card being dragged.
// The reference is not validated until MoveCardToColumn.
func (s *Store) SetDraggedCard(ref *models.DraggedCard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref == nil {
		s.dragged = nil
	} else {
		copied := *ref
		s.dragged = &copied
	}
	s.publish(events.EventDragChanged, "")
}

// MoveCardToColumn moves the dragged card to the end of toColumnID and clears
// the drag reference. Nothing happens when no card is being dragged or any
// part of the reference no longer resolves; the reference then stays set.
// Dropping a card on its own column moves it to the bottom.
func (s *Store) MoveCardToColumn(boardID types.BoardID, toColumnID types.ColumnID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragged == nil {
		return false
	}
	ref := *s.dragged

	bi := s.indexOf(boardID)
	if bi < 0 {
		return false
	}
	board := s.boards[bi].Clone()

	from := board.ColumnIndex(ref.FromColumnID)
	to := board.ColumnIndex(toColumnID)
	if from < 0 || to < 0 {
		return false
	}
	ki := board.Columns[from].CardIndex(ref.CardID)
	if ki < 0 {
		return false
	}

	card := board.Columns[from].Cards[ki]
	src := board.Columns[from].Cards
	board.Columns[from].Cards = append(src[:ki], src[ki+1:]...)
	board.Columns[to].Cards = append(board.Columns[to].Cards, card)

	s.dragged = nil
	s.replace(board)
	s.publish(events.EventDragChanged, boardID)
	return true
}

// ============================================================================
// Internals (callers hold s.mu)
// ============================================================================

func (s *Store) indexOf(id types.BoardID) int {
	for i, b := range s.boards {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// mutate clones the board, lets fn edit the clone and, if fn reports a
// change, swaps it in. The previous board value is never touched.
func (s *Store) mutate(id types.BoardID, fn func(*models.Board) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	board := s.boards[i].Clone()
	if !fn(&board) {
		return false
	}
	s.replace(board)
	return true
}

// replace installs board over the stored board with the same id using a
// fresh slice, then writes through.
func (s *Store) replace(board models.Board) {
	i := s.indexOf(board.ID)
	if i < 0 {
		return
	}
	boards := make([]models.Board, len(s.boards))
	copy(boards, s.boards)
	boards[i] = board
	s.boards = boards
	s.commit(board.ID)
}

// commit writes the full state through to storage and notifies subscribers
func (s *Store) commit(boardID types.BoardID) {
	s.persist()
	s.publish(events.EventBoardsChanged, boardID)
}

func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	data, err := storage.EncodeSnapshot(s.boards)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err = s.storage.Save(ctx, s.key, data)
		cancel()
	}
	if err != nil {
		s.logger.Error("failed to persist boards", "key", s.key, "error", err)
	}
	s.persistErr = err
}

func (s *Store) publish(t events.EventType, boardID types.BoardID) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.Event{Type: t, BoardID: boardID})
}

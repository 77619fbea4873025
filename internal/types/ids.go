package types

import "github.com/google/uuid"

// ID types give each identifier semantic meaning so a column id can't be
// passed where a card id is expected.

// BoardID identifies a unique board in the store
type BoardID string

// ColumnID identifies a unique column within a board
type ColumnID string

// CardID identifies a unique card within a column
type CardID string

// IDGenerator produces fresh identifiers. The store takes one so tests can
// make ids deterministic.
type IDGenerator func() string

// NewID returns a random (version 4) UUID string backed by crypto/rand.
func NewID() string {
	return uuid.NewString()
}

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty
func (id BoardID) IsZero() bool {
	return id == ""
}

func (id ColumnID) IsZero() bool {
	return id == ""
}

func (id CardID) IsZero() bool {
	return id == ""
}

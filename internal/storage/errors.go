package storage

import "errors"

// Storage-related errors
var (
	ErrNotFound       = errors.New("record not found")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrEmptyKey       = errors.New("storage key cannot be empty")
)

package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("key not found")

// Backend is a string-keyed store of JSON-encoded values.
type Backend interface {
	// Load returns the raw value saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// Kind names a Backend implementation.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindFile   Kind = "file"
	KindMemory Kind = "memory"
)

// OpenBackend opens the backend of the given kind. path is the database file
// for sqlite and the JSON document for file; memory ignores it.
func OpenBackend(kind Kind, path string) (Backend, error) {
	switch kind {
	case KindSQLite, "":
		return Open(path)
	case KindFile:
		return OpenFile(path)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}

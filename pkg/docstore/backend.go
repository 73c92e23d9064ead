package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when a collection has never been
// written. The store treats it as an empty collection.
var ErrNotFound = errors.New("collection not found")

// Backend persists one JSON blob per collection name. Implementations are a
// local file per collection or a key in a hosted key-value store.
type Backend interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
	Name() string
}

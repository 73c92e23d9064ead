// Package docstore is a JSON document store: every collection is persisted
// as a single JSON array (or object, for singleton documents) in a local
// file or a hosted key-value store. Mutations are whole-collection
// read-modify-write; callers never see partial writes.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Config selects the backend once at startup. If Addr is set the key-value
// backend is used exclusively; otherwise collections live as JSON files
// under DataDir.
type Config struct {
	DataDir string
	KV      KVConfig
}

// Store is the document store façade. Reads degrade to the empty collection
// on backend failure (availability over correctness for public pages);
// writes always surface the error, since a silently dropped write is worse
// than a visible one.
type Store struct {
	backend Backend
	cache   *Cache
	log     *zap.Logger
}

func New(cfg Config, log *zap.Logger) (*Store, error) {
	var backend Backend
	if cfg.KV.Addr != "" {
		kv, err := NewKVBackend(cfg.KV)
		if err != nil {
			return nil, err
		}
		backend = kv
	} else {
		fb, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		backend = fb
	}

	log.Info("Document store initialized", zap.String("backend", backend.Name()))

	return &Store{
		backend: backend,
		cache:   NewCache(),
		log:     log.With(zap.String("component", "docstore")),
	}, nil
}

// NewWithBackend wires an explicit backend. Used by tests.
func NewWithBackend(backend Backend, log *zap.Logger) *Store {
	return &Store{
		backend: backend,
		cache:   NewCache(),
		log:     log.With(zap.String("component", "docstore")),
	}
}

// Backend reports which backend the store was resolved to.
func (s *Store) Backend() string { return s.backend.Name() }

// ClearCache drops the cached copy of a collection so the next read hits
// the backend.
func (s *Store) ClearCache(collection string) {
	s.cache.Invalidate(collection)
}

func (s *Store) read(ctx context.Context, collection string) ([]byte, bool) {
	if data, ok := s.cache.Get(collection); ok {
		return data, true
	}

	data, err := s.backend.Read(ctx, collection)
	if errors.Is(err, ErrNotFound) {
		return nil, false
	}
	if err != nil {
		s.log.Warn("Backend read failed, serving empty collection",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, false
	}

	s.cache.Set(collection, data)
	return data, true
}

func (s *Store) write(ctx context.Context, collection string, data []byte) error {
	if err := s.backend.Write(ctx, collection, data); err != nil {
		s.log.Error("Backend write failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return err
	}

	// Invalidate only after the write lands, so a failed write keeps
	// serving the previous consistent copy.
	s.cache.Invalidate(collection)
	return nil
}

// readStrict reads the collection directly from the backend, bypassing the
// cache. Unlike read it propagates backend failures; only a collection that
// has never been written loads as absent.
func (s *Store) readStrict(ctx context.Context, collection string) ([]byte, error) {
	data, err := s.backend.Read(ctx, collection)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return data, nil
}

// Load returns the full collection, from cache when warm. A missing or
// unreadable collection loads as empty.
func Load[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	data, ok := s.read(ctx, collection)
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("Corrupt collection, serving empty",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return []T{}, nil
	}
	return items, nil
}

// LoadFresh discards any cached copy before loading. Public listing reads
// use it to favor freshness over the cache.
func LoadFresh[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	s.cache.Invalidate(collection)
	return Load[T](ctx, s, collection)
}

// LoadForUpdate loads the collection for a read-modify-write cycle. It never
// degrades: a backend failure or corrupt collection is an error, because
// rewriting a collection from a degraded (empty) load would destroy every
// record in it. Only a collection that has never been written loads as empty.
func LoadForUpdate[T any](ctx context.Context, s *Store, collection string) ([]T, error) {
	data, err := s.readStrict(ctx, collection)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal collection %s: %w", collection, err)
	}
	return items, nil
}

// Save rewrites the whole collection and invalidates its cache entry.
func Save[T any](ctx context.Context, s *Store, collection string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	return s.write(ctx, collection, data)
}

// LoadDoc returns a singleton document, or nil when absent or unreadable.
func LoadDoc[T any](ctx context.Context, s *Store, collection string) (*T, error) {
	data, ok := s.read(ctx, collection)
	if !ok {
		return nil, nil
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("Corrupt document, serving default",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return nil, nil
	}
	return &doc, nil
}

// LoadDocForUpdate loads a singleton document for a read-modify-write cycle.
// Like LoadForUpdate it never degrades; nil means the document has never
// been written, not that it could not be read.
func LoadDocForUpdate[T any](ctx context.Context, s *Store, collection string) (*T, error) {
	data, err := s.readStrict(ctx, collection)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", collection, err)
	}
	return &doc, nil
}

// SaveDoc rewrites a singleton document and invalidates its cache entry.
func SaveDoc[T any](ctx context.Context, s *Store, collection string, doc *T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", collection, err)
	}
	return s.write(ctx, collection, data)
}

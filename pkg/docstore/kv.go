package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KVConfig configures the hosted key-value backend.
type KVConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// KVBackend stores each collection under a single prefixed key in Redis.
type KVBackend struct {
	client *redis.Client
	prefix string
}

func NewKVBackend(cfg KVConfig) (*KVBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping kv store %s: %w", cfg.Addr, err)
	}

	return &KVBackend{client: client, prefix: cfg.Prefix}, nil
}

func (k *KVBackend) Name() string { return "kv" }

func (k *KVBackend) key(collection string) string {
	return k.prefix + collection
}

func (k *KVBackend) Read(ctx context.Context, collection string) ([]byte, error) {
	data, err := k.client.Get(ctx, k.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s from kv: %w", collection, err)
	}
	return data, nil
}

func (k *KVBackend) Write(ctx context.Context, collection string, data []byte) error {
	if err := k.client.Set(ctx, k.key(collection), data, 0).Err(); err != nil {
		return fmt.Errorf("write collection %s to kv: %w", collection, err)
	}
	return nil
}

func (k *KVBackend) Close() error {
	return k.client.Close()
}

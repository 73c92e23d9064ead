package docstore

import "sync"

// Cache keeps the last raw JSON read per collection for the life of the
// process. It is owned by the Store and invalidated after every successful
// write; there is no TTL or eviction beyond that.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) Get(collection string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[collection]
	return data, ok
}

func (c *Cache) Set(collection string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[collection] = data
}

func (c *Cache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, collection)
}

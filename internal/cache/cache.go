// Package cache persists small keyed lookups in the cache directory.
package cache

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/hyfetch-cli/hyfetch/filesystem"
	"github.com/hyfetch-cli/hyfetch/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type data[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// Keyed is a JSON file of key/value entries sharing one lifetime.
// It is safe for concurrent use.
type Keyed[K comparable, T any] struct {
	name       string
	lifetime   time.Duration
	keyWrapper func(K) K

	once     sync.Once
	internal *gache.Cache[*data[K, T]]
	mu       sync.RWMutex
}

// New creates a cache stored as name inside the cache directory. A zero
// lifetime never expires. The file is only opened on first use.
func New[K comparable, T any](name string, lifetime time.Duration, keyWrapper func(K) K) *Keyed[K, T] {
	if keyWrapper == nil {
		keyWrapper = func(k K) K { return k }
	}

	return &Keyed[K, T]{name: name, lifetime: lifetime, keyWrapper: keyWrapper}
}

func (c *Keyed[K, T]) cache() *gache.Cache[*data[K, T]] {
	c.once.Do(func() {
		c.internal = gache.New[*data[K, T]](&gache.Options{
			Path:       filepath.Join(where.Cache(), c.name),
			Lifetime:   c.lifetime,
			FileSystem: &filesystem.GacheFs{},
		})
	})

	return c.internal
}

// Get returns the entry stored under key, if present and fresh.
func (c *Keyed[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stored, expired, err := c.cache().Get()
	if err != nil || expired || stored == nil {
		return mo.None[T]()
	}

	if value, ok := stored.Entries[c.keyWrapper(key)]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set stores value under key. An expired file is started over.
func (c *Keyed[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, expired, err := c.cache().Get()
	if err != nil {
		return err
	}

	if expired || stored == nil || stored.Entries == nil {
		stored = &data[K, T]{Entries: make(map[K]T)}
	}

	stored.Entries[c.keyWrapper(key)] = value
	return c.cache().Set(stored)
}

// Delete removes the entry stored under key.
func (c *Keyed[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, expired, err := c.cache().Get()
	if err != nil {
		return err
	}

	if expired || stored == nil {
		return nil
	}

	delete(stored.Entries, c.keyWrapper(key))
	return c.cache().Set(stored)
}

// Path is where the cache file lives.
func (c *Keyed[K, T]) Path() string {
	return filepath.Join(where.Cache(), c.name)
}

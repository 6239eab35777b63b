// Package cache is a small in-memory query cache keyed by (entity, query
// params). Mutation handlers call Invalidate after every confirmed write so
// dependent list queries refetch; invalidations are also published on an
// event bus for anything else that wants to react to staleness.
package cache

import (
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
)

const TopicInvalidate = "cache:invalidate"

type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	bus     EventBus.Bus
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]any),
		bus:     EventBus.New(),
	}
}

// Key builds a cache key from an entity name and canonicalized query params.
func Key(entity string, params ...string) string {
	if len(params) == 0 {
		return entity + "|"
	}
	return entity + "|" + strings.Join(params, "&")
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) Set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Invalidate drops every cached query for the entity and notifies
// subscribers. Called after each successful create/update/delete.
func (c *Cache) Invalidate(entity string) {
	prefix := entity + "|"

	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()

	c.bus.Publish(TopicInvalidate, entity)
}

// OnInvalidate registers a callback fired with the entity name on every
// invalidation.
func (c *Cache) OnInvalidate(fn func(entity string)) error {
	return c.bus.Subscribe(TopicInvalidate, fn)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

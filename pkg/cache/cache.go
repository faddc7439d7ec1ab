package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a TTL byte cache; expired entries are swept by go-cache's janitor.
type Cache struct {
	backend *gocache.Cache
	ttl     time.Duration
	prefix  string
}

func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		backend: gocache.New(ttl, cleanupInterval),
		ttl:     ttl,
	}
}

// Namespace returns a view whose keys are prefixed; it shares storage with c.
func (c *Cache) Namespace(prefix string) *Cache {
	p := strings.TrimSuffix(prefix, ":") + ":"
	return &Cache{backend: c.backend, ttl: c.ttl, prefix: c.prefix + p}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	v, ok := c.backend.Get(c.prefix + key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (c *Cache) Set(key string, value []byte) {
	buf := make([]byte, len(value))
	copy(buf, value)
	c.backend.Set(c.prefix+key, buf, c.ttl)
}

func (c *Cache) Delete(key string) {
	c.backend.Delete(c.prefix + key)
}

// DeletePrefix drops every key in this namespace starting with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	full := c.prefix + prefix
	for k := range c.backend.Items() {
		if strings.HasPrefix(k, full) {
			c.backend.Delete(k)
		}
	}
}

func (c *Cache) Size() int {
	return c.backend.ItemCount()
}

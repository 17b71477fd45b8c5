package texture

import (
	"fmt"
	"sync"

	"ff7-asset-extract/internal/tex"
)

// Resolver resolves a texture name to a loaded texture.
type Resolver interface {
	Resolve(texName string) (*Texture, error)
}

// Cache is a concurrency-safe texture cache. Sprites cut from the same
// sheet share one decode.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
	mode  tex.Mode
}

type cacheEntry struct {
	tex *Texture
	err error // load failures are cached too
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index, mode tex.Mode) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		mode:  mode,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) (*Texture, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, fmt.Errorf("texture: %s not found", texName)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	t, err := LoadTexture(path, c.mode)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.tex, entry.err
	}
	c.items[path] = &cacheEntry{tex: t, err: err}
	return t, err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

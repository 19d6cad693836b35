package server

import "sync"

// pageCache keeps rendered table pages keyed by action id. The dataset is
// immutable after load, so a page never goes stale.
type pageCache struct {
	mu    sync.RWMutex
	pages map[string]string
}

func newPageCache() *pageCache {
	return &pageCache{pages: map[string]string{}}
}

func (c *pageCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.pages[key]
	return v, ok
}

func (c *pageCache) Put(key, page string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = page
}

package translate

import "sync"

// ModelCache maps model identifiers to loaded handles, populating on
// miss through the configured loader. The cache owns the handle
// lifetime explicitly instead of hiding it behind memoization.
type ModelCache struct {
	mu     sync.Mutex
	loader func(name string) (*Model, error)
	models map[string]*Model
}

// NewModelCache creates a cache backed by loader.
func NewModelCache(loader func(name string) (*Model, error)) *ModelCache {
	return &ModelCache{
		loader: loader,
		models: make(map[string]*Model),
	}
}

// Get returns the loaded handle for name, loading it on first use.
// Load failures are not cached so a later call may retry.
func (c *ModelCache) Get(name string) (*Model, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.models[name]; ok {
		return m, nil
	}

	m, err := c.loader(name)
	if err != nil {
		return nil, err
	}

	c.models[name] = m
	return m, nil
}

// Len returns the number of loaded models.
func (c *ModelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.models)
}

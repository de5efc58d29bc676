package folio

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAsset is returned for an asset name with no builder.
var ErrUnknownAsset = errors.New("folio: unknown asset")

// Asset is a generated file served as-is.
type Asset struct {
	Body        []byte
	ContentType string
}

// AssetCache builds generated assets on first use and keeps them in memory.
// Assets depend only on the content and the config, which never change while
// the app runs.
type AssetCache struct {
	mu     sync.RWMutex
	assets map[string]Asset
	build  map[string]func() (Asset, error)
}

// NewAssetCache creates a cache over the given builders, keyed by file name.
func NewAssetCache(builders map[string]func() (Asset, error)) *AssetCache {
	return &AssetCache{
		assets: make(map[string]Asset),
		build:  builders,
	}
}

// Get returns the named asset, building it if needed. It tries a read lock
// first and only takes the write lock when the asset has to be built.
func (c *AssetCache) Get(name string) (Asset, error) {
	c.mu.RLock()
	a, ok := c.assets[name]
	c.mu.RUnlock()
	if ok {
		return a, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.assets[name]; ok {
		return a, nil
	}
	build, ok := c.build[name]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %s", ErrUnknownAsset, name)
	}
	a, err := build()
	if err != nil {
		return Asset{}, fmt.Errorf("folio: build %s: %w", name, err)
	}
	c.assets[name] = a
	return a, nil
}

// Invalidate clears the cache so the next read rebuilds.
func (c *AssetCache) Invalidate() {
	c.mu.Lock()
	c.assets = make(map[string]Asset)
	c.mu.Unlock()
}

// Names lists the assets the cache can build, sorted.
func (c *AssetCache) Names() []string {
	names := make([]string, 0, len(c.build))
	for n := range c.build {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

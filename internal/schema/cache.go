package schema

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig sizes the catalog cache. One entry per app and language
// pair, so a handful of slots is plenty.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache defaults. Schemas change on game
// updates, not minute to minute, so a long TTL is safe.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: 8,
		TTL:  4 * time.Hour,
	}
}

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// cachedCatalogEntry wraps a built catalog with fetch metadata.
type cachedCatalogEntry struct {
	Catalog  *Catalog
	CachedAt time.Time
}

// catalogCache provides an in-memory LRU cache for built catalogs with
// time-based expiration.
type catalogCache struct {
	lru    *expirable.LRU[string, *cachedCatalogEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newCatalogCache(cfg CacheConfig) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedCatalogEntry](cfg.Size, nil, cfg.TTL),
	}
}

func cacheKey(appID int, language string) string {
	return strconv.Itoa(appID) + ":" + language
}

// Get retrieves a catalog from the cache.
// Returns (catalog, true) if present and unexpired.
func (c *catalogCache) Get(appID int, language string) (*Catalog, bool) {
	entry, found := c.lru.Get(cacheKey(appID, language))
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.Catalog, true
}

// Set stores a built catalog in the cache.
func (c *catalogCache) Set(appID int, language string, catalog *Catalog) {
	entry := &cachedCatalogEntry{
		Catalog:  catalog,
		CachedAt: time.Now(),
	}
	c.lru.Add(cacheKey(appID, language), entry)
}

// Invalidate removes one catalog from the cache.
func (c *catalogCache) Invalidate(appID int, language string) {
	c.lru.Remove(cacheKey(appID, language))
}

// Clear removes all entries from the cache.
func (c *catalogCache) Clear() {
	c.lru.Purge()
}

// GetStats returns a snapshot of the cache counters.
func (c *catalogCache) GetStats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.lru.Len(),
	}
}

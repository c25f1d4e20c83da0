package schema

import (
	"context"

	"github.com/osse101/BackpackBot_Go/internal/concurrency"
	"github.com/osse101/BackpackBot_Go/internal/domain"
	"github.com/osse101/BackpackBot_Go/internal/logger"
	"github.com/osse101/BackpackBot_Go/internal/metrics"
)

// Fetcher pulls raw schema payloads from the WebAPI.
type Fetcher interface {
	GetSchema(ctx context.Context, language string) (*domain.SchemaBody, error)
}

// Provider hands out built catalogs, fetching and caching per language.
type Provider interface {
	// Catalog returns the catalog for the language, fetching it on a
	// cache miss. An empty language means English.
	Catalog(ctx context.Context, language string) (*Catalog, error)
	// Refresh fetches a fresh catalog, replacing any cached one.
	Refresh(ctx context.Context, language string) (*Catalog, error)
	// Invalidate drops the cached catalog for the language.
	Invalidate(language string)
	GetCacheStats() CacheStats
}

// provider implements the Provider interface
type provider struct {
	fetcher Fetcher
	appID   int
	cache   *catalogCache
	locks   *concurrency.LockManager
}

// NewProvider creates a catalog provider over the given fetcher.
func NewProvider(fetcher Fetcher, appID int, cfg CacheConfig) Provider {
	return &provider{
		fetcher: fetcher,
		appID:   appID,
		cache:   newCatalogCache(cfg),
		locks:   concurrency.NewLockManager(),
	}
}

func (p *provider) Catalog(ctx context.Context, language string) (*Catalog, error) {
	if language == "" {
		language = languageEnglish
	}

	if catalog, ok := p.cache.Get(p.appID, language); ok {
		metrics.SchemaCache.WithLabelValues(metrics.ResultHit).Inc()
		return catalog, nil
	}
	metrics.SchemaCache.WithLabelValues(metrics.ResultMiss).Inc()

	// One fetch per language at a time; a GetSchema download is large
	// enough that piling on would hurt.
	lock := p.locks.GetLock(language)
	lock.Lock()
	defer lock.Unlock()

	if catalog, ok := p.cache.Get(p.appID, language); ok {
		return catalog, nil
	}

	return p.fetch(ctx, language)
}

func (p *provider) Refresh(ctx context.Context, language string) (*Catalog, error) {
	if language == "" {
		language = languageEnglish
	}

	lock := p.locks.GetLock(language)
	lock.Lock()
	defer lock.Unlock()

	return p.fetch(ctx, language)
}

func (p *provider) Invalidate(language string) {
	if language == "" {
		language = languageEnglish
	}
	p.cache.Invalidate(p.appID, language)
}

func (p *provider) GetCacheStats() CacheStats {
	return p.cache.GetStats()
}

// fetch downloads, builds and caches a catalog. Callers hold the
// language lock.
func (p *provider) fetch(ctx context.Context, language string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	body, err := p.fetcher.GetSchema(ctx, language)
	if err != nil {
		metrics.SchemaFetches.WithLabelValues(language, metrics.ResultError).Inc()
		log.Error("Schema fetch failed", "language", language, "error", err)
		return nil, err
	}

	catalog, err := Build(body, language)
	if err != nil {
		metrics.SchemaFetches.WithLabelValues(language, metrics.ResultError).Inc()
		log.Error("Schema build failed", "language", language, "error", err)
		return nil, err
	}

	p.cache.Set(p.appID, language, catalog)
	metrics.SchemaFetches.WithLabelValues(language, metrics.ResultSuccess).Inc()
	log.Info("Schema fetched", "language", language, "items", catalog.Len())

	return catalog, nil
}

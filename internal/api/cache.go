package api

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"docsearch/internal/domain"
)

// DefaultDocumentCacheSize is the number of documents kept when no size is given
const DefaultDocumentCacheSize = 128

// CachedDocuments wraps a DocumentFetcher with an LRU keyed by document id.
// Only successful fetches are cached.
type CachedDocuments struct {
	inner DocumentFetcher
	cache *lru.Cache[string, *domain.Document]
}

// NewCachedDocuments creates a cached fetcher holding up to size documents
func NewCachedDocuments(inner DocumentFetcher, size int) *CachedDocuments {
	if size <= 0 {
		size = DefaultDocumentCacheSize
	}
	cache, _ := lru.New[string, *domain.Document](size)
	return &CachedDocuments{
		inner: inner,
		cache: cache,
	}
}

// Document returns the cached document if present, otherwise fetches and caches it
func (c *CachedDocuments) Document(ctx context.Context, id string) (*domain.Document, error) {
	if doc, ok := c.cache.Get(id); ok {
		return doc, nil
	}

	doc, err := c.inner.Document(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.Add(id, doc)
	return doc, nil
}

// Len returns the number of cached documents
func (c *CachedDocuments) Len() int {
	return c.cache.Len()
}

// Purge drops every cached document
func (c *CachedDocuments) Purge() {
	c.cache.Purge()
}

// Package memory provides in-memory implementations of store interfaces.
package memory

import (
	"context"
	"sync"
	"time"

	stellartoml "github.com/marwen-abid/stellartoml-go"
)

// documentEntry is a cached document with its expiration time.
type documentEntry struct {
	Doc       *stellartoml.StellarToml
	ExpiresAt time.Time
}

// DocumentCache is an in-memory implementation of stellartoml.DocumentCache.
// Access is protected by sync.RWMutex for thread safety.
type DocumentCache struct {
	docs map[string]documentEntry
	mu   sync.RWMutex
	now  func() time.Time
}

// NewDocumentCache creates a new in-memory document cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		docs: make(map[string]documentEntry),
		now:  time.Now,
	}
}

// Get returns a copy of the cached document for domain if it has not
// expired. The copy is shallow: slices and pointed-to values are shared and
// must be treated as read-only.
func (c *DocumentCache) Get(ctx context.Context, domain string) (*stellartoml.StellarToml, bool, error) {
	c.mu.RLock()
	entry, exists := c.docs[domain]
	c.mu.RUnlock()

	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false, nil
	}
	doc := *entry.Doc
	return &doc, true, nil
}

// Put stores a copy of doc for domain until expiresAt, replacing any previous
// entry. Performs lazy cleanup of expired entries.
func (c *DocumentCache) Put(ctx context.Context, domain string, doc *stellartoml.StellarToml, expiresAt time.Time) error {
	if doc == nil {
		return nil
	}
	stored := *doc

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.docs {
		if now.After(entry.ExpiresAt) {
			delete(c.docs, key)
		}
	}

	c.docs[domain] = documentEntry{
		Doc:       &stored,
		ExpiresAt: expiresAt,
	}
	return nil
}

// Delete evicts domain from the cache.
func (c *DocumentCache) Delete(ctx context.Context, domain string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.docs, domain)
	return nil
}

// Len returns the number of entries, expired or not.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.docs)
}

// Verify that DocumentCache implements stellartoml.DocumentCache
var _ stellartoml.DocumentCache = (*DocumentCache)(nil)

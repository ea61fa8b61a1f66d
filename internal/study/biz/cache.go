package biz

import (
	"fmt"
	"sync"

	"github.com/Sid2318/Edufy/internal/pkg/textutil"
)

// generationCache memoizes expensive content-derived artifacts
// (sample questions, flashcards) keyed by kind plus a fingerprint of
// the full document content and any generation parameters. Replacing
// the document changes the fingerprint, so stale entries never
// resurface; Clear wipes everything on upload anyway.
type generationCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newGenerationCache() *generationCache {
	return &generationCache{entries: make(map[string]any)}
}

// CacheKey builds a stable cache key from the artifact kind, document
// content and extra parameters.
func CacheKey(kind, content string, params ...any) string {
	key := kind + ":" + textutil.Fingerprint(content)
	for _, p := range params {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

func (c *generationCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *generationCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *generationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

func (c *generationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

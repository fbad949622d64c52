package memory

import (
	"context"
	"sync"
	"time"

	"medtrack-core/internal/ports/translation"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time // zero = sin vencimiento
}

// TranslationCache es la caché en proceso; la instancia la crea el composer.
type TranslationCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *TranslationCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", translation.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", translation.ErrCacheMiss
	}
	return e.value, nil
}

func (c *TranslationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	e := cacheEntry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

func (c *TranslationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
